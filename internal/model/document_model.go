package model

import "gorm.io/datatypes"

// Document rows are append-only; the auto-increment id doubles as insertion order.
type Document struct {
	Id       uint              `gorm:"primaryKey;autoIncrement"`
	Subject  string            `gorm:"type:varchar(64);not null;index"`
	Filename string            `gorm:"type:varchar(512);not null"`
	Content  string            `gorm:"type:text"`
	Metadata datatypes.JSONMap `gorm:"type:json"`
}

func (Document) TableName() string {
	return "documents"
}
