package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is a session-local uploaded resume file. It lives in memory only
// and does not survive a process restart.
type Resume struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Content     []byte    `json:"-"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// NewResume creates a new Resume with a generated UUID handle
func NewResume(fileName, contentType string, content []byte) *Resume {
	return &Resume{
		ID:          uuid.New().String(),
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
		UploadedAt:  time.Now(),
	}
}
