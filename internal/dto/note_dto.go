package dto

import "time"

type CreateNoteRequest struct {
	Subject string `json:"subject" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type CreateNoteResponse struct {
	Id uint `json:"id"`
}

type NoteResponse struct {
	Id        uint      `json:"id"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
