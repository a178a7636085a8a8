package documents

import (
	"encoding/json"
	"time"
)

// UploadedDocument is the per-file upload acknowledgement.
type UploadedDocument struct {
	DocumentID   string `json:"document_id"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url,omitempty"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// UploadResponse wraps the acknowledgements for one upload request.
type UploadResponse struct {
	Message   string             `json:"message"`
	Documents []UploadedDocument `json:"documents"`
}

// DocumentSummary is the list-view representation of a document.
type DocumentSummary struct {
	ID        string     `json:"id"`
	FileName  string     `json:"file_name"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ParsedAt  *time.Time `json:"parsed_at,omitempty"`
}

// DocumentDetail is the full representation of a document.
type DocumentDetail struct {
	ID            string          `json:"id"`
	FileName      string          `json:"file_name"`
	FileURL       string          `json:"file_url,omitempty"`
	Status        string          `json:"status"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ParsedAt      *time.Time      `json:"parsed_at,omitempty"`
}

// DocumentStatus is one entry in a status poll response.
type DocumentStatus struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message,omitempty"`
	ParsedAt     *time.Time `json:"parsed_at,omitempty"`
	FileURL      string     `json:"file_url,omitempty"`
}

func toUploaded(doc Document) UploadedDocument {
	return UploadedDocument{
		DocumentID:   doc.ID,
		FileName:     doc.FileName,
		FileURL:      doc.FileURL,
		Status:       doc.Status,
		ErrorMessage: doc.ErrorMessage,
	}
}

func toSummary(doc Document) DocumentSummary {
	return DocumentSummary{
		ID:        doc.ID,
		FileName:  doc.FileName,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
		ParsedAt:  doc.ParsedAt,
	}
}

func toDetail(doc Document) DocumentDetail {
	return DocumentDetail{
		ID:            doc.ID,
		FileName:      doc.FileName,
		FileURL:       doc.FileURL,
		Status:        doc.Status,
		ExtractedJSON: doc.ExtractedJSON,
		ErrorMessage:  doc.ErrorMessage,
		CreatedAt:     doc.CreatedAt,
		ParsedAt:      doc.ParsedAt,
	}
}

func toStatus(doc Document) DocumentStatus {
	return DocumentStatus{
		ID:           doc.ID,
		Status:       doc.Status,
		ErrorMessage: doc.ErrorMessage,
		ParsedAt:     doc.ParsedAt,
		FileURL:      doc.FileURL,
	}
}
