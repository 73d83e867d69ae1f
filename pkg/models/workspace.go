package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

// Workspace is the root of a note hierarchy. It owns zero or more pages,
// which are removed with it by the cascade constraint on pages.workspace_id.
type Workspace struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`

	Pages []Page `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

// Create inserts a new workspace. The ID is assigned by the database and is
// immutable afterwards.
func (w *Workspace) Create(db *gorm.DB) error {
	if err := validation.ValidateStruct(w,
		validation.Field(&w.Name, validation.Required),
	); err != nil {
		return validationErr("workspace", err)
	}

	if err := db.Create(&w).Error; err != nil {
		return storageErr("workspace", "create", 0, err)
	}
	return nil
}

// Get retrieves a workspace by ID.
func (w *Workspace) Get(db *gorm.DB, id uint) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return validationErr("workspace", err)
	}

	if err := db.First(&w, id).Error; err != nil {
		return storageErr("workspace", "get", id, err)
	}
	return nil
}

// Delete removes the workspace row. Its pages and their markdowns are
// removed by the store's cascade constraints in the same statement, so either
// the whole subtree disappears or none of it does.
func (w *Workspace) Delete(db *gorm.DB) error {
	if err := validation.ValidateStruct(w,
		validation.Field(&w.ID, validation.Required),
	); err != nil {
		return validationErr("workspace", err)
	}

	result := db.Delete(&Workspace{}, w.ID)
	if result.Error != nil {
		return storageErr("workspace", "delete", w.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return storageErr("workspace", "delete", w.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// GetWorkspaces retrieves all workspaces in creation order.
func GetWorkspaces(db *gorm.DB) ([]Workspace, error) {
	var workspaces []Workspace
	err := db.
		Order("id ASC").
		Find(&workspaces).
		Error
	if err != nil {
		return nil, storageErr("workspace", "list", 0, err)
	}
	return workspaces, nil
}
