package specification

import "gorm.io/gorm"

// NewestFirst orders notes by creation time, most recent first.
// The id breaks ties between notes created within the same clock tick.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
