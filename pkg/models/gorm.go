package models

// ModelsToAutoMigrate returns the models in dependency order for GORM
// auto-migration. Parents come first so the cascade foreign keys on child
// tables can reference them.
func ModelsToAutoMigrate() []interface{} {
	return []interface{}{
		&Workspace{},
		&Page{},
		&Markdown{},
	}
}
