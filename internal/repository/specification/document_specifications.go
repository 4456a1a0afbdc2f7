package specification

import "gorm.io/gorm"

// InsertionOrder returns rows in the order they were stored.
type InsertionOrder struct{}

func (s InsertionOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
