// Package editor implements the single-entry edit session: a text
// buffer with a cursor, live advisory validation, and a save path that
// normalizes, re-validates and writes through the engine.
package editor

import (
	"strings"

	"github.com/CKPEIIKA/of-tui/internal/entrymeta"
	"github.com/CKPEIIKA/of-tui/internal/foam"
	"github.com/CKPEIIKA/of-tui/internal/validation"
)

// State tracks the session lifecycle. A session leaves Editing exactly
// once, into Saved or Cancelled.
type State int

const (
	Editing State = iota
	Saved
	Cancelled
)

// Session edits one entry's value. Validation while typing is
// advisory; only Save enforces it.
type Session struct {
	engine    foam.Engine
	cache     *entrymeta.Cache
	file      foam.CaseFile
	fullKey   string
	validator validation.Validator

	state   State
	buffer  []rune
	cursor  int
	advice  string
	failure string
}

// New starts a session seeded with the entry's current value, cursor
// at the end.
func New(engine foam.Engine, cache *entrymeta.Cache, file foam.CaseFile, fullKey string, meta entrymeta.Metadata) *Session {
	s := &Session{
		engine:    engine,
		cache:     cache,
		file:      file,
		fullKey:   fullKey,
		validator: meta.Validator,
		buffer:    []rune(meta.Value),
	}
	s.cursor = len(s.buffer)
	s.revalidate()
	return s
}

// State returns the session lifecycle state.
func (s *Session) State() State { return s.state }

// Text returns the buffer contents.
func (s *Session) Text() string { return string(s.buffer) }

// Cursor returns the cursor position in runes.
func (s *Session) Cursor() int { return s.cursor }

// Advice returns the live validation message, empty when the buffer
// currently validates.
func (s *Session) Advice() string { return s.advice }

// Failure returns the last save failure notice, if any.
func (s *Session) Failure() string { return s.failure }

// Insert places one character at the cursor and advances it.
func (s *Session) Insert(r rune) {
	if s.state != Editing {
		return
	}
	s.buffer = append(s.buffer[:s.cursor], append([]rune{r}, s.buffer[s.cursor:]...)...)
	s.cursor++
	s.revalidate()
}

// Backspace removes the character before the cursor.
func (s *Session) Backspace() {
	if s.state != Editing || s.cursor == 0 {
		return
	}
	s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
	s.cursor--
	s.revalidate()
}

// CursorLeft moves the cursor back, clamped at the buffer start.
func (s *Session) CursorLeft() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// CursorRight moves the cursor forward, clamped at the buffer end.
func (s *Session) CursorRight() {
	if s.cursor < len(s.buffer) {
		s.cursor++
	}
}

// Save normalizes the buffer, validates it and writes through the
// engine. A validation error or write failure keeps the session in
// Editing with the user's text intact; success transitions to Saved
// and refreshes the cache entry for this key.
func (s *Session) Save() (bool, string) {
	if s.state != Editing {
		return false, ""
	}
	value := autoformat(string(s.buffer))
	if s.validator != nil {
		if msg := s.validator(value); msg != "" {
			s.advice = msg
			return false, msg
		}
	}
	if err := s.engine.WriteEntry(s.file, s.fullKey, value); err != nil {
		s.failure = "write failed: " + err.Error()
		return false, s.failure
	}
	s.state = Saved
	s.cache.Invalidate(s.fullKey)
	return true, ""
}

// Cancel discards the buffer with no side effects.
func (s *Session) Cancel() {
	if s.state == Editing {
		s.state = Cancelled
	}
}

func (s *Session) revalidate() {
	s.failure = ""
	if s.validator == nil {
		s.advice = ""
		return
	}
	s.advice = s.validator(string(s.buffer))
}

// autoformat trims surrounding whitespace and strips one trailing
// newline from a proposed value before validation and write.
func autoformat(value string) string {
	value = strings.TrimSuffix(value, "\n")
	return strings.TrimSpace(value)
}
