// Package workspace converts a workspace subtree to and from a portable
// document. Export is read-only; import creates a complete new subtree in a
// single transaction, always minting fresh identifiers.
package workspace

import (
	"gorm.io/gorm"

	"github.com/Fanaperana/ekan/pkg/models"
)

// Export is the portable document representing a full workspace subtree.
// Identifiers inside the document are informational only: importing always
// assigns new ones.
type Export struct {
	Workspace models.Workspace `json:"workspace"`
	Pages     []PageExport     `json:"pages"`
}

// PageExport pairs a page with its markdown entries, both in position order.
type PageExport struct {
	Page      models.Page       `json:"page"`
	Markdowns []models.Markdown `json:"markdowns"`
}

// ExportWorkspace assembles the portable document for a workspace: the
// workspace row, then every page in position order, then each page's
// markdowns in position order. It returns models.ErrNotFound when the
// workspace does not exist. The traversal is read-only and runs inside a
// transaction so a concurrent write cannot produce a half-updated snapshot.
func ExportWorkspace(db *gorm.DB, workspaceID uint) (*Export, error) {
	var doc *Export

	err := db.Transaction(func(tx *gorm.DB) error {
		var ws models.Workspace
		if err := ws.Get(tx, workspaceID); err != nil {
			return err
		}

		pages, err := models.GetPagesForWorkspace(tx, workspaceID)
		if err != nil {
			return err
		}

		pageExports := make([]PageExport, 0, len(pages))
		for _, page := range pages {
			markdowns, err := models.GetMarkdownsForPage(tx, page.ID)
			if err != nil {
				return err
			}
			pageExports = append(pageExports, PageExport{
				Page:      page,
				Markdowns: markdowns,
			})
		}

		doc = &Export{
			Workspace: ws,
			Pages:     pageExports,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}
