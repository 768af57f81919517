// Package entrymeta resolves and caches per-entry metadata for one
// open dictionary file: the value, its inferred type, sub-keys,
// comments and info lines, plus a validator for edits. The cache keeps
// navigation snappy by avoiding repeated foamDictionary calls.
package entrymeta

import (
	"fmt"
	"strings"

	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/validation"
)

// ErrorValue is shown in place of a value the engine could not read.
// Navigation keeps working; only this one entry degrades.
const ErrorValue = "<error reading value>"

// Metadata is the resolved projection of one entry at a point in time.
// A non-empty SubKeys means the entry is a nested dictionary and
// should be descended into rather than edited as a scalar.
type Metadata struct {
	Value     string
	TypeLabel string
	SubKeys   []string
	Comments  []string
	InfoLines []string
	Validator validation.Validator
}

// IsDict reports whether the entry resolves to a nested dictionary.
func (m Metadata) IsDict() bool { return len(m.SubKeys) > 0 }

type cached struct {
	value     string
	typeLabel string
	subKeys   []string
	comments  []string
	infoLines []string
	enum      []string
}

// Cache holds entry metadata for one file session. It lives on the UI
// thread only and is discarded when the file is closed; it is never
// shared across files.
type Cache struct {
	engine  foam.Engine
	file    foam.CaseFile
	entries map[string]cached
}

// NewCache returns an empty cache bound to one file.
func NewCache(engine foam.Engine, file foam.CaseFile) *Cache {
	return &Cache{
		engine:  engine,
		file:    file,
		entries: make(map[string]cached),
	}
}

// Resolve returns the metadata for fullKey, fetching and caching it on
// first access. The validator is re-derived on every call: validators
// are cheap pure functions and recomputing them avoids holding stale
// closures in the cache.
func (c *Cache) Resolve(fullKey string) Metadata {
	if entry, ok := c.entries[fullKey]; ok {
		return c.metadataFor(fullKey, entry)
	}
	entry := c.fetch(fullKey)
	c.entries[fullKey] = entry
	return c.metadataFor(fullKey, entry)
}

// Invalidate re-resolves one key after a successful write, replacing
// the stored tuple wholesale. Engine failures are swallowed: stale
// metadata beats a crashed session.
func (c *Cache) Invalidate(fullKey string) {
	entry := c.fetch(fullKey)
	if entry.value == ErrorValue {
		return
	}
	c.entries[fullKey] = entry
}

// Forget drops every cached entry, for a full refresh of the session.
func (c *Cache) Forget() {
	c.entries = make(map[string]cached)
}

func (c *Cache) fetch(fullKey string) cached {
	value, err := c.engine.ReadEntry(c.file, fullKey)
	if err != nil {
		value = ErrorValue
	}

	_, typeLabel := validation.Choose(fullKey, value)
	if err != nil {
		typeLabel = validation.TypeError
	}

	entry := cached{
		value:     value,
		typeLabel: typeLabel,
		subKeys:   c.engine.ListSubKeys(c.file, fullKey),
		comments:  c.engine.Comments(c.file, fullKey),
		infoLines: c.engine.InfoLines(c.file, fullKey),
	}
	entry.infoLines = append(entry.infoLines, c.boundaryInfo(fullKey)...)

	if enum := c.engine.ListEnumValues(c.file, fullKey); len(enum) > 0 {
		entry.enum = enum
		entry.typeLabel = validation.TypeEnum
		entry.infoLines = append(entry.infoLines,
			"Allowed values: "+strings.Join(enum, ", "))
	}
	return entry
}

// metadataFor rebuilds the validator from the cached tuple. Validators
// are cheap pure functions; recomputing beats caching closures. The
// engine-reported enum set, when present, always wins.
func (c *Cache) metadataFor(fullKey string, entry cached) Metadata {
	var validator validation.Validator
	if len(entry.enum) > 0 {
		validator = validation.EnumOf(entry.enum)
	} else {
		validator, _ = validation.Choose(fullKey, entry.value)
	}
	return Metadata{
		Value:     entry.value,
		TypeLabel: entry.typeLabel,
		SubKeys:   entry.subKeys,
		Comments:  entry.comments,
		InfoLines: entry.infoLines,
		Validator: validator,
	}
}

// boundaryInfo adds patch annotations for keys under boundaryField:
// the patch's type and value entries, with an explicit note when one
// is missing. Incomplete boundary conditions are the classic silent
// case setup mistake.
func (c *Cache) boundaryInfo(fullKey string) []string {
	parts := strings.Split(fullKey, ".")
	idx := -1
	for i, part := range parts {
		if part == "boundaryField" {
			idx = i
			break
		}
	}
	if idx == -1 || idx+1 >= len(parts) {
		return nil
	}
	patch := parts[idx+1]
	patchKey := strings.Join(parts[:idx+2], ".")

	var info []string
	if bcType, err := c.engine.ReadEntry(c.file, patchKey+".type"); err == nil && strings.TrimSpace(bcType) != "" {
		info = append(info, fmt.Sprintf("BC %s type: %s", patch, strings.TrimSpace(bcType)))
	} else {
		info = append(info, fmt.Sprintf("BC %s: missing required entry 'type'", patch))
	}
	if bcValue, err := c.engine.ReadEntry(c.file, patchKey+".value"); err == nil && strings.TrimSpace(bcValue) != "" {
		info = append(info, fmt.Sprintf("BC %s value: %s", patch, strings.TrimSpace(bcValue)))
	} else {
		info = append(info, fmt.Sprintf("BC %s: value entry not found", patch))
	}
	return info
}
