// Package i18n resolves dotted "module.property" keys to display strings for
// the active language. English is built in; other languages are YAML files
// named <code>.yaml in a languages directory.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// English is the code of the built-in table.
const English = "en"

var tableExts = []string{".yaml", ".yml"}

var placeholderRE = regexp.MustCompile(`\{(\d+)\}`)

// Table maps module -> property -> template.
type Table map[string]map[string]string

// Resolver holds the active table. Load always leaves it usable.
type Resolver struct {
	mu    sync.RWMutex
	dir   string
	log   zerolog.Logger
	code  string
	table Table
}

// New returns a resolver reading external tables from dir. Nothing is loaded
// until Load or the first T.
func New(dir string, log zerolog.Logger) *Resolver {
	return &Resolver{dir: dir, log: log, code: English}
}

// Available lists "en" and every table file in the languages directory,
// sorted.
func (r *Resolver) Available() []string {
	codes := []string{English}
	seen := map[string]bool{English: true}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Debug().Err(err).Str("dir", r.dir).Msg("i18n: cannot list languages")
		}
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !isTableExt(ext) {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ext)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func isTableExt(ext string) bool {
	for _, e := range tableExts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Current returns the code of the loaded table.
func (r *Resolver) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.code
}

// Load installs the table for code. Unknown or unreadable languages fall back
// to English, so Load reports true unless English itself cannot be
// installed, which never happens.
func (r *Resolver) Load(code string) bool {
	if code == English {
		r.install(English, english)
		return true
	}
	table, err := r.readTable(code)
	if err != nil {
		r.log.Warn().Err(err).Str("language", code).Msg("i18n: falling back to English")
		return r.Load(English)
	}
	r.install(code, table)
	return true
}

func (r *Resolver) install(code string, t Table) {
	r.mu.Lock()
	r.code = code
	r.table = t
	r.mu.Unlock()
}

func (r *Resolver) readTable(code string) (Table, error) {
	if code == "" || strings.ContainsAny(code, `/\`) {
		return nil, fmt.Errorf("invalid language code %q", code)
	}
	var lastErr error
	for _, ext := range tableExts {
		data, err := os.ReadFile(filepath.Join(r.dir, code+ext))
		if err != nil {
			lastErr = err
			continue
		}
		return ParseTable(data)
	}
	return nil, lastErr
}

// ParseTable decodes a two-level YAML mapping. Scalar leaves of any type are
// kept as their string form; modules that are not mappings are dropped.
func ParseTable(data []byte) (Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse language table: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parse language table: empty document")
	}
	t := make(Table, len(raw))
	for module, v := range raw {
		props, ok := v.(map[string]any)
		if !ok {
			continue
		}
		m := make(map[string]string, len(props))
		for prop, pv := range props {
			if pv == nil {
				continue
			}
			switch pv.(type) {
			case map[string]any, []any:
				continue
			}
			m[prop] = fmt.Sprint(pv)
		}
		t[module] = m
	}
	return t, nil
}

// T resolves key for the active language and substitutes {0}, {1}, ... with
// args. Malformed keys and misses return key unchanged.
func (r *Resolver) T(key string, args ...any) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = key
		}
	}()

	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return key
	}

	r.mu.RLock()
	loaded := r.table != nil
	r.mu.RUnlock()
	if !loaded {
		r.Load(English)
	}

	r.mu.RLock()
	tmpl, ok := r.table[parts[0]][parts[1]]
	r.mu.RUnlock()
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return Format(tmpl, args...)
}

// Format replaces each {n} in tmpl with args[n]. Placeholders without a
// matching argument are left as they are.
func Format(tmpl string, args ...any) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(m string) string {
		n, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || n >= len(args) {
			return m
		}
		return fmt.Sprint(args[n])
	})
}
