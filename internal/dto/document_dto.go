package dto

type UploadDocumentRequest struct {
	Subject  string                 `json:"subject" validate:"required"`
	Filename string                 `json:"filename" validate:"required"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UploadDocumentResponse struct {
	Id uint `json:"id"`
}

type UploadBatchRequest struct {
	Documents []UploadDocumentRequest `json:"documents" validate:"required,min=1,dive"`
}

type UploadBatchResponse struct {
	Ids []uint `json:"ids"`
}

type DocumentResponse struct {
	Id       uint                   `json:"id"`
	Filename string                 `json:"filename"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type SearchDocumentsRequest struct {
	Query   string `query:"q"`
	Subject string `query:"subject"`
}
