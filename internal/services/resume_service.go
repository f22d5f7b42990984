package services

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/alimgiray/gitfolio/internal/models"
)

const (
	// MaxResumeSize is the upload limit, 5 MiB inclusive
	MaxResumeSize = 5 << 20

	resumeContentType = "application/pdf"

	// supersededTTL is how long a replaced resume stays downloadable
	// before its handle is invalidated.
	supersededTTL = time.Second
)

var (
	ErrResumeType     = errors.New("resume must be a PDF document")
	ErrResumeTooLarge = errors.New("resume must be 5 MB or smaller")
	ErrResumeNotFound = errors.New("resume not found")
)

// ResumeService keeps uploaded resumes in memory for the lifetime of the
// process. A rejected upload changes nothing; an accepted one supersedes the
// previous resume, whose handle is invalidated after a grace period.
type ResumeService struct {
	mu        sync.Mutex
	resumes   map[string]*models.Resume
	currentID string
	ttl       time.Duration
}

func NewResumeService() *ResumeService {
	return &ResumeService{
		resumes: make(map[string]*models.Resume),
		ttl:     supersededTTL,
	}
}

// Upload validates and stores a resume. The declared content type must be
// application/pdf and the declared size at most 5 MiB; anything else is
// rejected without touching the previously issued handle.
func (s *ResumeService) Upload(fileName, contentType string, size int64, r io.Reader) (*models.Resume, error) {
	if contentType != resumeContentType {
		return nil, ErrResumeType
	}
	if size > MaxResumeSize {
		return nil, ErrResumeTooLarge
	}

	// Read one byte past the limit so a lying Content-Length is caught too.
	content, err := io.ReadAll(io.LimitReader(r, MaxResumeSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	if len(content) > MaxResumeSize {
		return nil, ErrResumeTooLarge
	}

	resume := models.NewResume(fileName, contentType, content)

	s.mu.Lock()
	superseded := s.currentID
	s.resumes[resume.ID] = resume
	s.currentID = resume.ID
	s.mu.Unlock()

	if superseded != "" {
		time.AfterFunc(s.ttl, func() {
			s.invalidate(superseded)
		})
	}

	return resume, nil
}

// Get returns the resume for a previously issued handle
func (s *ResumeService) Get(id string) (*models.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume, ok := s.resumes[id]
	if !ok {
		return nil, ErrResumeNotFound
	}
	return resume, nil
}

// Current returns the most recently accepted resume, or nil
func (s *ResumeService) Current() *models.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return nil
	}
	return s.resumes[s.currentID]
}

func (s *ResumeService) invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.resumes, id)
}
