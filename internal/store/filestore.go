package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"pergunu/internal/model"
)

// Document is the entire flat-file database: one JSON object holding every
// collection. All I/O is whole-document; callers read-modify-write.
type Document struct {
	Users                []model.User                `json:"users"`
	News                 []model.News                `json:"news"`
	Sessions             []model.Session             `json:"sessions"`
	Applications         []model.Application         `json:"applications"`
	Beasiswa             []model.Beasiswa            `json:"beasiswa"`
	BeasiswaApplications []model.BeasiswaApplication `json:"beasiswa_applications"`
}

func defaultDocument() Document {
	return Document{
		Users:                []model.User{},
		News:                 []model.News{},
		Sessions:             []model.Session{},
		Applications:         []model.Application{},
		Beasiswa:             []model.Beasiswa{},
		BeasiswaApplications: []model.BeasiswaApplication{},
	}
}

// FileStore is the durable collection storage used when no document database
// is reachable. The single JSON file is the unit of atomicity; a mutex
// serializes whole-document I/O within the process.
type FileStore struct {
	mu       sync.Mutex
	path     string
	seedPath string
	durable  bool // a document database is configured for this deployment
}

// NewFileStore creates a store backed by the file at path. seedPath names a
// bundled snapshot copied into place on first access, but only when no
// document database is configured (durable=false): once a durable backend
// has ever been configured, resurrecting stale seed data must not happen.
func NewFileStore(path, seedPath string, durable bool) *FileStore {
	return &FileStore{path: path, seedPath: seedPath, durable: durable}
}

// Read returns the whole document. A missing file materializes the default
// structure and persists it; a corrupt file returns the default in memory
// without persisting (fail-soft).
func (s *FileStore) Read() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if !s.durable && s.seedPath != "" {
			if seed, err := os.ReadFile(s.seedPath); err == nil {
				if err := os.WriteFile(s.path, seed, 0o644); err != nil {
					log.Printf("filestore: seed copy failed: %v", err)
				}
			}
		}
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		doc := defaultDocument()
		if err := s.write(doc); err != nil {
			log.Printf("filestore: create default failed: %v", err)
		}
		return doc
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("filestore: parse failed, serving default: %v", err)
		return defaultDocument()
	}
	return doc
}

// Write serializes the full document and overwrites the file.
func (s *FileStore) Write(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

func (s *FileStore) write(doc Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
