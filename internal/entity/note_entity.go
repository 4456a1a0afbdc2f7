package entity

import "time"

type Note struct {
	Id        uint
	Subject   Subject
	Title     string
	Content   string
	CreatedAt time.Time
}
