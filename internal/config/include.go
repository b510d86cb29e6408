package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ErrIncludeCycle is returned when config files include each other.
var ErrIncludeCycle = errors.New("config include cycle")

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// includeResolver flattens a config file and everything it pulls in via
// "$include" (a path or a list of paths, relative to the including file).
// Later sources win: includes in order, then the including file itself.
type includeResolver struct {
	stack []string
}

// loadResolvedConfig returns path as a single JSON document with includes
// merged and ${VAR} references replaced from the environment.
func loadResolvedConfig(path string) ([]byte, error) {
	var r includeResolver
	doc, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func (r *includeResolver) resolve(path string) (map[string]any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	for _, open := range r.stack {
		if open == abs {
			return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, abs)
		}
	}
	r.stack = append(r.stack, abs)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", abs, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	includes, err := includeList(doc["$include"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	delete(doc, "$include")

	out := map[string]any{}
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(abs), inc)
		}
		child, err := r.resolve(inc)
		if err != nil {
			return nil, fmt.Errorf("include %s: %w", inc, err)
		}
		merge(out, child)
	}
	merge(out, expandEnv(doc).(map[string]any))
	return out, nil
}

func includeList(v any) ([]string, error) {
	var raw []any
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []any{t}
	case []any:
		raw = t
	default:
		return nil, errors.New("$include must be a path or a list of paths")
	}
	var paths []string
	for _, item := range raw {
		p, ok := item.(string)
		if !ok {
			return nil, errors.New("$include entries must be strings")
		}
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// merge copies src into dst, descending into nested objects.
func merge(dst, src map[string]any) {
	for k, v := range src {
		child, isObj := v.(map[string]any)
		if !isObj {
			dst[k] = v
			continue
		}
		target, ok := dst[k].(map[string]any)
		if !ok {
			target = map[string]any{}
			dst[k] = target
		}
		merge(target, child)
	}
}

// expandEnv replaces ${VAR} in every string of v. Unset variables are left
// as written.
func expandEnv(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = expandEnv(item)
		}
	case []any:
		for i, item := range t {
			t[i] = expandEnv(item)
		}
	case string:
		return envRef.ReplaceAllStringFunc(t, func(ref string) string {
			if val, ok := os.LookupEnv(ref[2 : len(ref)-1]); ok {
				return val
			}
			return ref
		})
	}
	return v
}
