package dto

import "neurostudy-be/internal/entity"

type StudyRequest struct {
	Subject string `json:"subject" validate:"required"`
	Strict  *bool  `json:"-"` // from ?strict=, nil falls back to config
}

type StudyResponse struct {
	entity.StudySession
	Diagnostics []string `json:"diagnostics,omitempty"`
}
