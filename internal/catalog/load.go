// Package catalog loads the feature catalog that pain points are matched against.
//
// A catalog is a list of feature records stored as a JSON array (.json), JSON lines
// (.jsonl) or a YAML sequence (.yaml/.yml). The path may also be a glob pattern
// (doublestar syntax); every matching file is loaded in lexical order.
package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const maxLineSize = 1 << 20

// Load reads and validates every record found at path.
//
// Any failure is returned as a *ConfigError naming the file and, for invalid records,
// the record index and field.
func Load(path string) ([]Feature, error) {
	files, err := resolve(path)
	if err != nil {
		return nil, err
	}

	var out []Feature
	for _, f := range files {
		features, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, features...)
	}
	if out == nil {
		out = []Feature{}
	}
	return out, nil
}

// IsPattern reports whether path contains glob metacharacters.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func resolve(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fileError(path, fmt.Errorf("%w: empty path", ErrNotFound))
	}
	if !IsPattern(path) {
		return []string{path}, nil
	}
	matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fileError(path, fmt.Errorf("invalid pattern: %w", err))
	}
	if len(matches) == 0 {
		return nil, fileError(path, fmt.Errorf("%w: pattern matched no files", ErrNotFound))
	}
	sort.Strings(matches)
	return matches, nil
}

func loadFile(path string) ([]Feature, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fileError(path, ErrNotFound)
		}
		return nil, fileError(path, fmt.Errorf("cannot read: %w", err))
	}

	var raws []rawFeature
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		raws, err = decodeJSONL(b)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &raws)
	default:
		err = json.Unmarshal(b, &raws)
	}
	if err != nil {
		return nil, fileError(path, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	if raws == nil && !strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return nil, fileError(path, fmt.Errorf("%w: expected a list of features", ErrMalformed))
	}

	out := make([]Feature, 0, len(raws))
	for i, r := range raws {
		f, err := r.validate()
		if err != nil {
			err.Path = path
			err.Record = i
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeJSONL(b []byte) ([]rawFeature, error) {
	var out []rawFeature
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var r rawFeature
		if err := json.Unmarshal(text, &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// validate converts r into a Feature. Keywords and pain points default to empty.
func (r rawFeature) validate() (Feature, *ConfigError) {
	missing := func(field string) (Feature, *ConfigError) {
		return Feature{}, &ConfigError{Field: field, Err: ErrMissingField}
	}
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return missing("feature_name")
	}
	if r.Categories == nil {
		return missing("categories")
	}
	if r.Description == nil {
		return missing("description")
	}
	if r.MoreInfoLink == nil {
		return missing("more_info_link")
	}

	f := Feature{
		Name:                *r.Name,
		Categories:          *r.Categories,
		Description:         *r.Description,
		Keywords:            r.Keywords,
		PainPointsAddressed: r.PainPointsAddressed,
		MoreInfoLink:        *r.MoreInfoLink,
	}
	if f.Categories == nil {
		f.Categories = []string{}
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	if f.PainPointsAddressed == nil {
		f.PainPointsAddressed = []string{}
	}
	return f, nil
}
