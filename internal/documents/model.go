package documents

import (
	"encoding/json"
	"time"
)

// Document lifecycle states. Records are persisted only once they are
// terminal; StatusProcessing exists for the in-flight window between
// accepting an upload and the pipeline join completing.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Document is one uploaded BRSR report and its processing outcome.
// Exactly one of ExtractedJSON and ErrorMessage is populated on a
// terminal record; FileURL is set only when the storage write succeeded.
type Document struct {
	ID            string
	OwnerID       string
	FileName      string
	FileURL       string
	Status        string
	ExtractedJSON json.RawMessage
	ErrorMessage  string
	CreatedAt     time.Time
	ParsedAt      *time.Time
}
