package store

import (
	"encoding/json"
	"fmt"

	"github.com/confvar/confvar/debug"
	"github.com/confvar/confvar/patch"
	"github.com/confvar/confvar/version"
)

// The store went through three record shapes:
//
//	schema 1: one line per patch     {"file","profile","path","value"}
//	schema 2: one line per snapshot  {"fileId","name","content"}
//	schema 3: canonical              {"schema":3,"kind",...}
//
// Baselines in the schema 1/2 era were lines {"fileId","content"} without a
// name. Detection is structural, a closed set of variants; anything else is
// a migration error naming the line.

type schemaVariant int

const (
	schemaUnknown schemaVariant = iota
	schemaV1Patch
	schemaV2Snapshot
	schemaLegacyBaseline
	schemaV3
)

type flatPatchRecord struct {
	File    string `json:"file"`
	Profile string `json:"profile"`
	Path    string `json:"path"`
	Value   string `json:"value"`
}

type snapshotRecord struct {
	FileID  string `json:"fileId"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func detect(raw map[string]json.RawMessage) schemaVariant {
	if _, ok := raw["schema"]; ok {
		return schemaV3
	}
	if has(raw, "file") && has(raw, "profile") && has(raw, "path") {
		return schemaV1Patch
	}
	if has(raw, "fileId") && has(raw, "name") && has(raw, "content") {
		return schemaV2Snapshot
	}
	if has(raw, "fileId") && has(raw, "content") {
		return schemaLegacyBaseline
	}
	return schemaUnknown
}

func has(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

// migrate detects each line's schema and runs the ordered pipeline up to the
// canonical form. Baselines are gathered first so snapshot migration can
// extract against them.
func migrate(lines [][]byte) (map[string]string, map[string][]*version.Version, error) {
	baselines := map[string]string{}
	versions := map[string][]*version.Version{}

	variants := make([]schemaVariant, len(lines))
	raws := make([]map[string]json.RawMessage, len(lines))
	for i, line := range lines {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
		}
		variants[i] = detect(raw)
		raws[i] = raw
		if variants[i] == schemaUnknown {
			return nil, nil, fmt.Errorf("%w: line %d: unrecognized record shape", ErrMigrate, i+1)
		}
	}

	// baselines first: canonical, then legacy
	for i, line := range lines {
		switch variants[i] {
		case schemaV3:
			var rec record
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			if rec.Schema != schemaCurrent {
				return nil, nil, fmt.Errorf("%w: line %d: unsupported schema %d", ErrMigrate, i+1, rec.Schema)
			}
			if rec.Kind == kindBaseline {
				baselines[rec.FileID] = rec.Content
			}
		case schemaLegacyBaseline:
			var rec snapshotRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			baselines[rec.FileID] = rec.Content
		}
	}

	var flats []flatPatchRecord
	for i, line := range lines {
		switch variants[i] {
		case schemaV3:
			var rec record
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			switch rec.Kind {
			case kindBaseline:
			case kindVersion:
				v := &version.Version{
					ID:      rec.ID,
					FileID:  rec.FileID,
					Name:    rec.Name,
					Patches: rec.Patches,
				}
				versions[v.FileID] = append(versions[v.FileID], v)
			default:
				return nil, nil, fmt.Errorf("%w: line %d: unknown kind %q", ErrMigrate, i+1, rec.Kind)
			}

		case schemaV1Patch:
			var rec flatPatchRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			flats = append(flats, rec)

		case schemaV2Snapshot:
			var rec snapshotRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			v, err := migrateSnapshot(baselines[rec.FileID], &rec)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMigrate, i+1, err)
			}
			versions[v.FileID] = append(versions[v.FileID], v)
		}
	}
	for _, v := range migrateFlat(flats) {
		versions[v.FileID] = append(versions[v.FileID], v)
	}
	if debug.Store() {
		debug.Logf("store: migrated %d flat records\n", len(flats))
	}
	return baselines, versions, nil
}

// migrateFlat groups schema 1 per-patch records into versions, preserving
// first-seen (file, profile) order and per-profile patch order.
func migrateFlat(recs []flatPatchRecord) []*version.Version {
	var res []*version.Version
	at := map[[2]string]*version.Version{}
	for _, rec := range recs {
		key := [2]string{rec.File, rec.Profile}
		v := at[key]
		if v == nil {
			v = &version.Version{FileID: rec.File, Name: rec.Profile}
			at[key] = v
			res = append(res, v)
		}
		v.Patches = append(v.Patches, patch.Patch{Path: rec.Path, Value: rec.Value})
	}
	return res
}

// migrateSnapshot turns a schema 2 full-content snapshot into a sparse
// version by extracting patches against the file's baseline. Without a
// recorded baseline the version starts empty.
func migrateSnapshot(baseline string, rec *snapshotRecord) (*version.Version, error) {
	v := &version.Version{FileID: rec.FileID, Name: rec.Name}
	if baseline == "" {
		return v, nil
	}
	patches, err := patch.Extract([]byte(baseline), []byte(rec.Content))
	if err != nil {
		return nil, fmt.Errorf("snapshot %q of %q: %w", rec.Name, rec.FileID, err)
	}
	v.Patches = patches
	return v, nil
}
