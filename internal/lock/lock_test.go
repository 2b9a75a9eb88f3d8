package lock

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".aisdlc.lock")
	return NewStore(path), path
}

func TestStore_ReadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	rec, corrupted := store.Read()

	assert.False(t, corrupted)
	assert.False(t, rec.Active())
	assert.Equal(t, Record{}, rec)
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	want := Record{
		Slug:    "my-idea",
		Current: "1.prd",
		Created: "2025-06-01T12:00:00Z",
	}
	require.NoError(t, store.Write(want))

	got, corrupted := store.Read()

	assert.False(t, corrupted)
	assert.Equal(t, want, got)
	assert.True(t, got.Active())
}

func TestStore_CorruptedFileReadsAsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not JSON", content: "this is not json {{{"},
		{name: "JSON array instead of object", content: `["a", "b"]`},
		{name: "JSON string", content: `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			rec, corrupted := store.Read()

			assert.True(t, corrupted)
			assert.Equal(t, Record{}, rec)
		})
	}
}

func TestStore_EmptyObjectIsNotCorrupted(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	rec, corrupted := store.Read()

	assert.False(t, corrupted)
	assert.False(t, rec.Active())
}

func TestStore_EmptyRecordSerializesAsEmptyObject(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Write(Record{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Write(NewRecord("my-idea", "0.idea")))

	require.NoError(t, store.Clear())

	rec, corrupted := store.Read()
	assert.False(t, corrupted)
	assert.False(t, rec.Active())
}

func TestStore_WriteOverwritesFully(t *testing.T) {
	// Write is a full replace, not a merge: fields absent from the new
	// record must not survive from the old one.
	store, _ := newTestStore(t)
	require.NoError(t, store.Write(Record{Slug: "old", Current: "0.idea", Created: "2025-01-01T00:00:00Z"}))

	require.NoError(t, store.Write(Record{Slug: "new", Current: "1.prd"}))

	rec, _ := store.Read()
	assert.Equal(t, "new", rec.Slug)
	assert.Empty(t, rec.Created)
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("my-idea", "0.idea")

	assert.Equal(t, "my-idea", rec.Slug)
	assert.Equal(t, "0.idea", rec.Current)

	created, err := time.Parse(time.RFC3339, rec.Created)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)
}
