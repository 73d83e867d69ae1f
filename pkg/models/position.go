package models

import (
	"fmt"

	"gorm.io/gorm"
)

// nextPosition returns the append position for a new child row under the
// given parent scope: 0 when the scope has no children, max(position)+1
// otherwise. It must run on the same transaction as the insert that follows
// it, or two interleaved creations under one parent can be assigned the same
// position.
//
// Positions are never renumbered after a deletion. Gaps are fine; only the
// relative order matters.
func nextPosition(tx *gorm.DB, model interface{}, parentColumn string, parentID uint) (int, error) {
	var next int
	err := tx.
		Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&next).
		Error
	if err != nil {
		return 0, fmt.Errorf("error computing next position for %s %d: %w", parentColumn, parentID, err)
	}
	return next, nil
}
