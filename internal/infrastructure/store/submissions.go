// Package store persists user-submitted product corrections to a JSON file.
// The journal is loaded once at startup and written through on every append.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/labelwise/backend/internal/domain"
)

// FileStore is a mutex-guarded, file-backed submission journal
type FileStore struct {
	path        string
	mutex       sync.Mutex
	submissions []domain.Submission
	nextID      int
}

// NewFileStore opens (or initializes) the journal at path. A missing file
// starts an empty journal; a corrupt file is a startup error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, nextID: 1}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Append assigns the payload a sequential id and an RFC 3339 UTC timestamp,
// then persists the journal. The id is released again if the write fails.
func (s *FileStore) Append(payload map[string]any) (*domain.Submission, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	submission := domain.Submission{
		ID:          s.nextID,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
		Payload:     payload,
	}
	s.submissions = append(s.submissions, submission)
	s.nextID++

	if err := s.persist(); err != nil {
		s.submissions = s.submissions[:len(s.submissions)-1]
		s.nextID--
		return nil, err
	}

	return &submission, nil
}

// List returns a copy of every stored submission in append order
func (s *FileStore) List() []domain.Submission {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]domain.Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read submissions: %w", err)
	}

	if err := json.Unmarshal(data, &s.submissions); err != nil {
		return fmt.Errorf("parse submissions: %w", err)
	}

	for _, submission := range s.submissions {
		if submission.ID >= s.nextID {
			s.nextID = submission.ID + 1
		}
	}
	return nil
}

func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write submissions: %w", err)
	}
	return nil
}
