package dto

type ChatRequest struct {
	Message    string `json:"message" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	FocusLevel *int   `json:"focus_level"` // nil means the default, out-of-range values are clamped
	SessionId  string `json:"session_id"`
}

// ChatResponse holds either Text or Error. A failed generation is still a 200.
type ChatResponse struct {
	Text       string   `json:"text,omitempty"`
	Speech     string   `json:"speech,omitempty"`
	Citations  []string `json:"citations,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
	Error      string   `json:"error,omitempty"`
	State      string   `json:"state"`
	SessionId  string   `json:"session_id"`
}

type ChatTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
