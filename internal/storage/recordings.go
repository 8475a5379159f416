package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Recording tracks one uploaded audio file through its run. Nothing here
// survives a restart; the report file is the only durable output.
type Recording struct {
	ID          string
	Path        string
	DisplayName string
	Status      string // uploaded, processing, processed, failed
	Duration    time.Duration
	Size        int64 // file size in bytes
	CreatedAt   time.Time
	Transcript  string
	Translation string
	ReportPath  string
	Error       string
}

// Store is an in-memory recording registry guarded by a mutex.
type Store struct {
	mu         sync.Mutex
	dir        string
	recordings map[string]*Recording
}

// NewStore creates a store saving uploads under dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{
		dir:        dir,
		recordings: make(map[string]*Recording),
	}, nil
}

// SaveAudio saves an uploaded audio file and registers the recording.
func (s *Store) SaveAudio(file *multipart.FileHeader) (*Recording, error) {
	id := fmt.Sprintf("rec_%d", time.Now().UnixNano())
	dst := filepath.Join(s.dir, id+"_"+filepath.Base(file.Filename))

	if err := saveMultipartFile(file, dst); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	var size int64
	if info, err := os.Stat(dst); err == nil {
		size = info.Size()
	}

	rec := &Recording{
		ID:          id,
		Path:        dst,
		DisplayName: file.Filename,
		Status:      "uploaded",
		Size:        size,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.recordings[id] = rec
	s.mu.Unlock()

	recCopy := *rec
	return &recCopy, nil
}

// Get retrieves a recording by ID
func (s *Store) Get(id string) (*Recording, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recordings[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	recCopy := *rec
	return &recCopy, true
}

// List returns all recordings, newest first.
func (s *Store) List() []Recording {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recording, 0, len(s.recordings))
	for _, rec := range s.recordings {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UpdateStatus updates the status of a recording
func (s *Store) UpdateStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recordings[id]; ok {
		rec.Status = status
	}
}

// UpdateResult records the outputs of a finished run.
func (s *Store) UpdateResult(id, transcript, translation, reportPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recordings[id]; ok {
		rec.Transcript = transcript
		rec.Translation = translation
		rec.ReportPath = reportPath
		rec.Status = "processed"
	}
}

// UpdateError marks a recording failed with its error message.
func (s *Store) UpdateError(id, errorMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recordings[id]; ok {
		rec.Error = errorMsg
		rec.Status = "failed"
	}
}

// UpdateDuration updates recording duration
func (s *Store) UpdateDuration(id string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recordings[id]; ok {
		rec.Duration = duration
	}
}

/* helper */
func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
