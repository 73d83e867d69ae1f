package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// Markdown is a single stored content fragment within a page. It follows the
// same positional contract as Page, scoped to its page.
type Markdown struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	Position  int       `gorm:"not null;uniqueIndex:idx_markdowns_page_position,priority:2" json:"position"`
	PageID    uint      `gorm:"not null;index;uniqueIndex:idx_markdowns_page_position,priority:1" json:"page_id"`
	CreatedAt time.Time `json:"-"`
}

// Create inserts a new markdown entry appended to the end of its page's
// sequence. Position computation and insert run in one transaction.
func (m *Markdown) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(m,
		validation.Field(&m.Content, validation.Required),
		validation.Field(&m.PageID, validation.Required),
	); err != nil {
		return validationErr("markdown", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var page Page
		if err := page.Get(tx, m.PageID); err != nil {
			return err
		}

		position, err := nextPosition(tx, &Markdown{}, "page_id", m.PageID)
		if err != nil {
			return storageErr("markdown", "create", 0, err)
		}
		m.Position = position

		if err := tx.Create(&m).Error; err != nil {
			return storageErr("markdown", "create", 0, err)
		}
		return nil
	})
}

// Get retrieves a markdown entry by ID.
func (m *Markdown) Get(db *gorm.DB, id uint) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return validationErr("markdown", err)
	}

	if err := db.First(&m, id).Error; err != nil {
		return storageErr("markdown", "get", id, err)
	}
	return nil
}

// GetMarkdownsForPage retrieves all markdown entries of a page in position
// order.
func GetMarkdownsForPage(db *gorm.DB, pageID uint) ([]Markdown, error) {
	if err := validation.Validate(pageID, validation.Required); err != nil {
		return nil, validationErr("markdown", err)
	}

	var markdowns []Markdown
	err := db.
		Where("page_id = ?", pageID).
		Order("position ASC").
		Find(&markdowns).
		Error
	if err != nil {
		return nil, storageErr("markdown", "list", pageID, err)
	}
	return markdowns, nil
}
