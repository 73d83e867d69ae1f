package models

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// Page is an ordered unit of content within a workspace. Position is unique
// per workspace and defines navigation order; values are not renumbered after
// deletions, so gaps are expected.
type Page struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Position    int       `gorm:"not null;uniqueIndex:idx_pages_workspace_position,priority:2" json:"position"`
	WorkspaceID uint      `gorm:"not null;index;uniqueIndex:idx_pages_workspace_position,priority:1" json:"workspace_id"`
	CreatedAt   time.Time `json:"-"`

	Markdowns []Markdown `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

// Create inserts a new page appended to the end of its workspace's page
// sequence. The position computation and the insert run in one transaction
// so two interleaved creations cannot claim the same position.
func (p *Page) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.WorkspaceID, validation.Required),
	); err != nil {
		return validationErr("page", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var workspace Workspace
		if err := workspace.Get(tx, p.WorkspaceID); err != nil {
			return err
		}

		position, err := nextPosition(tx, &Page{}, "workspace_id", p.WorkspaceID)
		if err != nil {
			return storageErr("page", "create", 0, err)
		}
		p.Position = position

		if err := tx.Omit("Markdowns").Create(&p).Error; err != nil {
			return storageErr("page", "create", 0, err)
		}
		return nil
	})
}

// Get retrieves a page by ID.
func (p *Page) Get(db *gorm.DB, id uint) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return validationErr("page", err)
	}

	if err := db.First(&p, id).Error; err != nil {
		return storageErr("page", "get", id, err)
	}
	return nil
}

// Delete removes the page row. Its markdowns go with it via the cascade
// constraint on markdowns.page_id.
func (p *Page) Delete(db *gorm.DB) error {
	if err := validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.Required),
	); err != nil {
		return validationErr("page", err)
	}

	result := db.Delete(&Page{}, p.ID)
	if result.Error != nil {
		return storageErr("page", "delete", p.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return storageErr("page", "delete", p.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// GetPagesForWorkspace retrieves all pages of a workspace in position order.
func GetPagesForWorkspace(db *gorm.DB, workspaceID uint) ([]Page, error) {
	if err := validation.Validate(workspaceID, validation.Required); err != nil {
		return nil, validationErr("page", err)
	}

	var pages []Page
	err := db.
		Where("workspace_id = ?", workspaceID).
		Order("position ASC").
		Find(&pages).
		Error
	if err != nil {
		return nil, storageErr("page", "list", workspaceID, err)
	}
	return pages, nil
}

// NextPage returns the sibling immediately after the given page in its
// workspace's position order, or nil when the page is last. It returns
// ErrNotFound when the anchor page itself no longer exists.
func NextPage(db *gorm.DB, pageID uint) (*Page, error) {
	return adjacentPage(db, pageID, 1)
}

// PreviousPage returns the sibling immediately before the given page, or nil
// when the page is first. It returns ErrNotFound when the anchor page itself
// no longer exists.
func PreviousPage(db *gorm.DB, pageID uint) (*Page, error) {
	return adjacentPage(db, pageID, -1)
}

func adjacentPage(db *gorm.DB, pageID uint, offset int) (*Page, error) {
	var current Page
	if err := current.Get(db, pageID); err != nil {
		return nil, err
	}

	siblings, err := GetPagesForWorkspace(db, current.WorkspaceID)
	if err != nil {
		return nil, err
	}

	for i := range siblings {
		if siblings[i].ID != pageID {
			continue
		}
		j := i + offset
		if j < 0 || j >= len(siblings) {
			return nil, nil
		}
		return &siblings[j], nil
	}

	// The page vanished between the two reads.
	return nil, fmt.Errorf("page %d: %w", pageID, ErrNotFound)
}
