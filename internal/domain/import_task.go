package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	StatusQueued     ImportTaskStatus = "queued"
	StatusProcessing ImportTaskStatus = "processing"
	StatusCompleted  ImportTaskStatus = "completed"
	StatusFailed     ImportTaskStatus = "failed"
)

type ImportTaskSource string

const (
	SourceUpload ImportTaskSource = "upload"
	SourceSheet  ImportTaskSource = "sheet"
)

// ImportTask tracks one queued import through the worker. Upload tasks
// carry the raw JSON payload; sheet tasks carry the spreadsheet ID and
// the document is parsed when the task is processed.
type ImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	Source        ImportTaskSource   `bson:"source" json:"source"`
	Payload       []byte             `bson:"payload,omitempty" json:"-"`
	SpreadsheetID string             `bson:"spreadsheet_id,omitempty" json:"spreadsheet_id,omitempty"`
	Report        *ImportReport      `bson:"report,omitempty" json:"report,omitempty"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
