package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confvar/confvar/patch"
	"github.com/confvar/confvar/version"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "store.jsonl"))
	require.NoError(t, err)
	return s
}

func TestOpenMissing(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.Files())
	_, ok := s.Baseline("/etc/app.json")
	assert.False(t, ok)
}

func TestPutGetDelete(t *testing.T) {
	s := tempStore(t)
	v := &version.Version{
		FileID:  "/etc/app.json",
		Name:    "prod",
		Patches: []patch.Patch{{Path: "/a", Value: "1"}},
	}
	require.NoError(t, s.Put(v))
	assert.NotEmpty(t, v.ID, "Put assigns a missing ID")

	got, ok := s.Get("/etc/app.json", "prod")
	require.True(t, ok)
	assert.Equal(t, v, got)

	_, ok = s.Get("/etc/app.json", "staging")
	assert.False(t, ok)

	require.NoError(t, s.Delete("/etc/app.json", "prod"))
	_, ok = s.Get("/etc/app.json", "prod")
	assert.False(t, ok)

	err := s.Delete("/etc/app.json", "prod")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutReplaceKeepsID(t *testing.T) {
	s := tempStore(t)
	v1 := &version.Version{FileID: "/f", Name: "prod", Patches: []patch.Patch{{Path: "/a", Value: "1"}}}
	require.NoError(t, s.Put(v1))

	v2 := &version.Version{FileID: "/f", Name: "prod", Patches: []patch.Patch{{Path: "/a", Value: "2"}}}
	require.NoError(t, s.Put(v2))

	assert.Equal(t, v1.ID, v2.ID, "replacing a version by name keeps its identity")
	vs := s.Versions("/f")
	require.Len(t, vs, 1)
	assert.Equal(t, "2", vs[0].Patches[0].Value)
}

func TestSetBaselineReports(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Put(&version.Version{
		FileID:  "/f",
		Name:    "prod",
		Patches: []patch.Patch{{Path: "/b", Value: "2"}},
	}))

	reports, err := s.SetBaseline("/f", `{"a": 1, "b": 2}`)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// dropping b from the baseline makes prod stale
	reports, err = s.SetBaseline("/f", `{"a": 1}`)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "prod", reports[0].Version.Name)
	assert.Equal(t, []string{"/b"}, reports[0].Invalid)
}

func TestCheckNoBaseline(t *testing.T) {
	s := tempStore(t)
	_, err := s.Check("/f")
	assert.ErrorIs(t, err, ErrNoBaseline)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.jsonl")
	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.SetBaseline("/f", `{"a": 1, "b": 2}`)
	require.NoError(t, err)
	v := &version.Version{FileID: "/f", Name: "prod", Patches: []patch.Patch{{Path: "/a", Value: "10"}}}
	require.NoError(t, s.Put(v))

	s2, err := Open(path)
	require.NoError(t, err)
	base, ok := s2.Baseline("/f")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1, "b": 2}`, base)
	got, ok := s2.Get("/f", "prod")
	require.True(t, ok)
	assert.Equal(t, v, got)
	assert.Equal(t, []string{"/f"}, s2.Files())
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "store.jsonl")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SetBaseline("/f", `{}`)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFilesSorted(t *testing.T) {
	s := tempStore(t)
	_, err := s.SetBaseline("/z", `{}`)
	require.NoError(t, err)
	require.NoError(t, s.Put(&version.Version{FileID: "/a", Name: "p"}))
	assert.Equal(t, []string{"/a", "/z"}, s.Files())
}
