package model

import "time"

type Note struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Subject   string    `gorm:"type:varchar(64);not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Note) TableName() string {
	return "notes"
}
