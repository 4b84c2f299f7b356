package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryStore keeps the high score in memory. Saves counts writes.
type MemoryStore struct {
	Value int
	Saves int
}

func (m *MemoryStore) Load() (int, error) {
	if m == nil {
		return 0, nil
	}
	return m.Value, nil
}

func (m *MemoryStore) Save(score int) error {
	if m == nil {
		return nil
	}
	m.Value = score
	m.Saves++
	return nil
}

// FileStore keeps the high score in a small yaml file. A missing file reads
// as zero.
type FileStore struct {
	Path string
}

type highScoreFile struct {
	HighScore int `yaml:"high_score"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("session: read high score %q: %w", f.Path, err)
	}

	var doc highScoreFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("session: parse high score %q: %w", f.Path, err)
	}
	if doc.HighScore < 0 {
		return 0, nil
	}
	return doc.HighScore, nil
}

func (f *FileStore) Save(score int) error {
	data, err := yaml.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return fmt.Errorf("session: encode high score: %w", err)
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("session: create %q: %w", dir, err)
		}
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("session: write high score %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("session: replace high score %q: %w", f.Path, err)
	}
	return nil
}
