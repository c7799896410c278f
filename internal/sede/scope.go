package sede

import "gorm.io/gorm"

// Scope restricts a query to rows of one sede.
func Scope(sede string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("sede = ?", sede)
	}
}
