package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/confvar/confvar/debug"
	"github.com/confvar/confvar/patch"
	"github.com/confvar/confvar/version"
)

const schemaCurrent = 3

// record is the canonical JSONL line shape (schema 3). Kind selects which of
// the remaining fields are meaningful.
type record struct {
	Schema  int           `json:"schema"`
	Kind    string        `json:"kind"`
	ID      string        `json:"id,omitempty"`
	FileID  string        `json:"fileId"`
	Name    string        `json:"name,omitempty"`
	Content string        `json:"content,omitempty"`
	Patches []patch.Patch `json:"patches,omitempty"`
}

const (
	kindBaseline = "baseline"
	kindVersion  = "version"
)

// Store holds the baselines and versions of all tracked files, backed by a
// JSONL file rewritten atomically on every mutation.
type Store struct {
	mu        sync.Mutex
	path      string
	baselines map[string]string
	versions  map[string][]*version.Version
}

// Open loads the store at path, migrating legacy records as needed. A
// missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:      path,
		baselines: map[string]string{},
		versions:  map[string][]*version.Version{},
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading store %q: %w", path, err)
	}
	if err := s.load(d); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(d []byte) error {
	var lines [][]byte
	sc := bufio.NewScanner(bytes.NewReader(d))
	sc.Buffer(nil, 16<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading store %q: %w", s.path, err)
	}
	baselines, versions, err := migrate(lines)
	if err != nil {
		return err
	}
	s.baselines = baselines
	s.versions = versions
	if debug.Store() {
		debug.Logf("store: loaded %d lines from %s\n", len(lines), s.path)
	}
	return nil
}

// Files returns the sorted IDs of all tracked files.
func (s *Store) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := map[string]bool{}
	for id := range s.baselines {
		set[id] = true
	}
	for id := range s.versions {
		set[id] = true
	}
	res := make([]string, 0, len(set))
	for id := range set {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// Baseline returns the recorded baseline text for fileID.
func (s *Store) Baseline(fileID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.baselines[fileID]
	return b, ok
}

// SetBaseline commits content as the new baseline for fileID, persists, and
// returns the health reports for the file's versions under the new baseline
// so the caller can warn about versions the change made stale.
func (s *Store) SetBaseline(fileID, content string) ([]version.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselines[fileID] = content
	if err := s.save(); err != nil {
		return nil, err
	}
	return version.Check([]byte(content), s.versions[fileID]), nil
}

// Versions returns fileID's versions in creation order.
func (s *Store) Versions(fileID string) []*version.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.versions[fileID])
}

// Get returns the named version of fileID.
func (s *Store) Get(fileID, name string) (*version.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.versions[fileID] {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Put inserts v, or replaces the version with the same file and name. A
// missing ID is assigned.
func (s *Store) Put(v *version.Version) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	vs := s.versions[v.FileID]
	replaced := false
	for i := range vs {
		if vs[i].Name == v.Name {
			v.ID = vs[i].ID
			vs[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		vs = append(vs, v)
	}
	s.versions[v.FileID] = vs
	return s.save()
}

// Delete removes the named version of fileID.
func (s *Store) Delete(fileID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs := s.versions[fileID]
	for i := range vs {
		if vs[i].Name == name {
			s.versions[fileID] = slices.Delete(vs, i, i+1)
			return s.save()
		}
	}
	return fmt.Errorf("%w: version %q of %q", ErrNotFound, name, fileID)
}

// Check runs the health check for fileID's versions against its recorded
// baseline.
func (s *Store) Check(fileID string) ([]version.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base, ok := s.baselines[fileID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoBaseline, fileID)
	}
	return version.Check([]byte(base), s.versions[fileID]), nil
}

// save rewrites the JSONL file via a temp file and rename. Callers hold mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	fileIDs := make([]string, 0, len(s.baselines))
	for id := range s.baselines {
		fileIDs = append(fileIDs, id)
	}
	slices.Sort(fileIDs)
	for _, id := range fileIDs {
		rec := record{Schema: schemaCurrent, Kind: kindBaseline, FileID: id, Content: s.baselines[id]}
		if err := enc.Encode(&rec); err != nil {
			return err
		}
	}
	vFileIDs := make([]string, 0, len(s.versions))
	for id := range s.versions {
		vFileIDs = append(vFileIDs, id)
	}
	slices.Sort(vFileIDs)
	for _, id := range vFileIDs {
		for _, v := range s.versions[id] {
			rec := record{
				Schema:  schemaCurrent,
				Kind:    kindVersion,
				ID:      v.ID,
				FileID:  v.FileID,
				Name:    v.Name,
				Patches: v.Patches,
			}
			if err := enc.Encode(&rec); err != nil {
				return err
			}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "confvar-*.jsonl.tmp")
	if err != nil {
		return fmt.Errorf("persisting store: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("persisting store: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("persisting store: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("persisting store: %w", err)
	}
	return nil
}
