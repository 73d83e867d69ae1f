package workspace

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"

	"github.com/Fanaperana/ekan/pkg/models"
)

// ValidateDocument checks the import preconditions for every row of the
// document before any storage call is made. All row failures are collected
// into one error so a caller can report the whole document at once.
func ValidateDocument(doc *Export) error {
	if doc == nil {
		return &models.ValidationError{Entity: "export document", Err: fmt.Errorf("document is nil")}
	}

	var result *multierror.Error

	if doc.Workspace.Name == "" {
		result = multierror.Append(result, fmt.Errorf("workspace: name is required"))
	}

	for i, pe := range doc.Pages {
		if pe.Page.Title == "" {
			result = multierror.Append(result, fmt.Errorf("page %d: title is required", i))
		}
		if pe.Page.Position < 0 {
			result = multierror.Append(result, fmt.Errorf("page %d: position must not be negative", i))
		}
		for j, md := range pe.Markdowns {
			if md.Content == "" {
				result = multierror.Append(result, fmt.Errorf("page %d markdown %d: content is required", i, j))
			}
			if md.Position < 0 {
				result = multierror.Append(result, fmt.Errorf("page %d markdown %d: position must not be negative", i, j))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return &models.ValidationError{Entity: "export document", Err: err}
	}
	return nil
}

// ImportWorkspace creates a new workspace subtree from the document inside a
// single transaction. Titles, contents, and positions are preserved verbatim;
// every identifier is freshly minted and the document's identifiers are never
// reused. A failure on any row rolls back the whole import, leaving no
// partial workspace behind.
func ImportWorkspace(db *gorm.DB, doc *Export) (uint, error) {
	if err := ValidateDocument(doc); err != nil {
		return 0, err
	}

	var workspaceID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		ws := models.Workspace{Name: doc.Workspace.Name}
		if err := tx.Omit("Pages").Create(&ws).Error; err != nil {
			return &models.StorageError{Entity: "workspace", Op: "import", Err: err}
		}

		for i, pe := range doc.Pages {
			page := models.Page{
				Title:       pe.Page.Title,
				Position:    pe.Page.Position,
				WorkspaceID: ws.ID,
			}
			if err := tx.Omit("Markdowns").Create(&page).Error; err != nil {
				return &models.StorageError{
					Entity: fmt.Sprintf("page %d", i),
					Op:     "import",
					Err:    err,
				}
			}

			for j, md := range pe.Markdowns {
				markdown := models.Markdown{
					Content:  md.Content,
					Position: md.Position,
					PageID:   page.ID,
				}
				if err := tx.Create(&markdown).Error; err != nil {
					return &models.StorageError{
						Entity: fmt.Sprintf("page %d markdown %d", i, j),
						Op:     "import",
						Err:    err,
					}
				}
			}
		}

		workspaceID = ws.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return workspaceID, nil
}
