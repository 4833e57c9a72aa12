package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type fileRecord struct {
	Values map[string]string   `json:"values"`
	Lists  map[string][]string `json:"lists"`
}

// FileStore is a Store backed by a single JSON file on disk. Writes are
// serialized by a mutex so concurrent callers never interleave a save.
type FileStore struct {
	path string
	mu   sync.Mutex
	rec  fileRecord
}

// NewFileStore opens (or creates) the JSON file at path and returns a
// FileStore backed by it. A missing or unreadable file starts empty rather
// than failing, matching the teacher's tolerant startup behavior.
func NewFileStore(path string) *FileStore {
	logger := logrus.WithFields(logrus.Fields{
		"function": "NewFileStore",
		"package":  "storage",
		"path":     path,
	})

	fs := &FileStore{
		path: path,
		rec: fileRecord{
			Values: make(map[string]string),
			Lists:  make(map[string][]string),
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithField("error", err).Warn("failed to read storage file, starting empty")
		}
		return fs
	}
	if len(data) == 0 {
		return fs
	}
	if err := json.Unmarshal(data, &fs.rec); err != nil {
		logger.WithField("error", err).Warn("failed to parse storage file, starting empty")
		fs.rec = fileRecord{Values: make(map[string]string), Lists: make(map[string][]string)}
	}
	if fs.rec.Values == nil {
		fs.rec.Values = make(map[string]string)
	}
	if fs.rec.Lists == nil {
		fs.rec.Lists = make(map[string][]string)
	}

	return fs
}

// save writes the current record to disk. Callers must hold mu.
func (f *FileStore) save() error {
	data, err := json.MarshalIndent(f.rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rec.Values[key]
	return v, ok, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rec.Values[key] = value
	return f.save()
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rec.Values, key)
	return f.save()
}

func (f *FileStore) Has(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rec.Values[key]
	return ok, nil
}

func (f *FileStore) AppendList(ctx context.Context, key, item string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rec.Lists[key] = append(f.rec.Lists[key], item)
	return f.save()
}

func (f *FileStore) GetList(ctx context.Context, key string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.rec.Lists[key]))
	copy(out, f.rec.Lists[key])
	return out, nil
}
