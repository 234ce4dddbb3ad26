package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pergunu/internal/model"
)

func TestFileStore_MissingFileMaterializesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewFileStore(path, "", true)

	doc := s.Read()
	require.NotNil(t, doc.Users)
	require.Empty(t, doc.Users)
	require.NotNil(t, doc.BeasiswaApplications)

	// the default document was persisted
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, "users")
	require.Contains(t, onDisk, "beasiswa_applications")
}

func TestFileStore_CorruptFileServesDefaultWithoutOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewFileStore(path, "", true)

	doc := s.Read()
	require.Empty(t, doc.News)

	// the corrupt file is left untouched for manual recovery
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{not json", string(raw))
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewFileStore(path, "", true)

	doc := s.Read()
	doc.News = append(doc.News, model.News{ID: "n1", Title: "Judul", Content: "Isi"})
	doc.Users = append(doc.Users, model.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, s.Write(doc))

	got := s.Read()
	require.Len(t, got.News, 1)
	require.Equal(t, "n1", got.News[0].ID)
	require.Len(t, got.Users, 1)
	require.Equal(t, "a@b.c", got.Users[0].Email)
}

func TestFileStore_SeedCopiedOnlyWhenNotDurable(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.json")
	seed := Document{News: []model.News{{ID: "seeded"}}}
	raw, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(seedPath, raw, 0o644))

	ephemeral := NewFileStore(filepath.Join(dir, "eph.json"), seedPath, false)
	doc := ephemeral.Read()
	require.Len(t, doc.News, 1)
	require.Equal(t, "seeded", doc.News[0].ID)

	durable := NewFileStore(filepath.Join(dir, "dur.json"), seedPath, true)
	doc = durable.Read()
	require.Empty(t, doc.News, "durable deployments must not resurrect seed data")
}
