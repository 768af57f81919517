// Package browser holds the tree-walk state for one open dictionary
// file: the current sibling list, selection, scroll window and the
// frame stack used to descend into and return from sub-dictionaries.
package browser

import (
	"strings"

	"github.com/CKPEIIKA/of-tui/internal/entrymeta"
)

// Frame is one level of descent. Popping a frame restores the
// selection exactly as it was before descending.
type Frame struct {
	BaseKey     string
	SiblingKeys []string
	Index       int
}

// Navigator walks the key tree of one file. The zero value is not
// usable; construct with New.
type Navigator struct {
	cache *entrymeta.Cache

	baseKey      string
	siblingKeys  []string
	index        int
	scrollOffset int
	stack        []Frame
}

// New returns a navigator positioned at the first of the file's
// top-level keys.
func New(cache *entrymeta.Cache, topLevelKeys []string) *Navigator {
	return &Navigator{
		cache:       cache,
		siblingKeys: topLevelKeys,
	}
}

// Keys returns the sibling list at the current level.
func (n *Navigator) Keys() []string { return n.siblingKeys }

// Index returns the selected position within the sibling list.
func (n *Navigator) Index() int { return n.index }

// ScrollOffset returns the first visible row index.
func (n *Navigator) ScrollOffset() int { return n.scrollOffset }

// Depth returns how many sub-dictionaries deep the selection sits.
func (n *Navigator) Depth() int { return len(n.stack) }

// BaseKey returns the dotted prefix of the current level, empty at the
// file root.
func (n *Navigator) BaseKey() string { return n.baseKey }

// CurrentKey returns the selected key name, or "" for an empty level.
func (n *Navigator) CurrentKey() string {
	if len(n.siblingKeys) == 0 {
		return ""
	}
	return n.siblingKeys[n.index]
}

// FullKey returns the dotted path of the selected entry.
func (n *Navigator) FullKey() string {
	key := n.CurrentKey()
	if key == "" {
		return n.baseKey
	}
	if n.baseKey == "" {
		return key
	}
	return n.baseKey + "." + key
}

// FullKeyOf joins a sibling key name onto the current base prefix.
func (n *Navigator) FullKeyOf(key string) string {
	if n.baseKey == "" {
		return key
	}
	return n.baseKey + "." + key
}

// CurrentMetadata resolves the selected entry through the cache.
func (n *Navigator) CurrentMetadata() entrymeta.Metadata {
	return n.cache.Resolve(n.FullKey())
}

// MoveDown advances the selection, wrapping past the last sibling.
func (n *Navigator) MoveDown() {
	if len(n.siblingKeys) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.siblingKeys)
}

// MoveUp moves the selection back, wrapping past the first sibling.
func (n *Navigator) MoveUp() {
	if len(n.siblingKeys) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.siblingKeys)) % len(n.siblingKeys)
}

// MoveTop jumps to the first sibling.
func (n *Navigator) MoveTop() { n.index = 0 }

// MoveBottom jumps to the last sibling.
func (n *Navigator) MoveBottom() {
	if len(n.siblingKeys) > 0 {
		n.index = len(n.siblingKeys) - 1
	}
}

// Descend pushes the current level and enters the selected
// sub-dictionary. It reports false, leaving the state untouched, when
// the selected entry is not a dictionary.
func (n *Navigator) Descend() bool {
	meta := n.CurrentMetadata()
	if !meta.IsDict() {
		return false
	}
	n.stack = append(n.stack, Frame{
		BaseKey:     n.baseKey,
		SiblingKeys: n.siblingKeys,
		Index:       n.index,
	})
	n.baseKey = n.FullKey()
	n.siblingKeys = meta.SubKeys
	n.index = 0
	n.scrollOffset = 0
	return true
}

// Ascend pops one frame and restores the selection exactly as pushed.
// It reports false at the file root, which means the browser should
// close.
func (n *Navigator) Ascend() bool {
	if len(n.stack) == 0 {
		return false
	}
	frame := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.baseKey = frame.BaseKey
	n.siblingKeys = frame.SiblingKeys
	n.index = frame.Index
	n.scrollOffset = 0
	return true
}

// Search scans the current level cyclically for the first sibling
// whose key, resolved value or comments contain the query, starting
// one step from the selection in the given direction. A full cycle
// without a hit leaves the selection unchanged and reports false. The
// match is case-insensitive.
func (n *Navigator) Search(query string, backward bool) bool {
	total := len(n.siblingKeys)
	if total == 0 || query == "" {
		return false
	}
	needle := strings.ToLower(query)
	step := 1
	if backward {
		step = -1
	}
	for i := 1; i <= total; i++ {
		candidate := ((n.index+step*i)%total + total) % total
		if strings.Contains(n.haystack(n.siblingKeys[candidate]), needle) {
			n.index = candidate
			return true
		}
	}
	return false
}

func (n *Navigator) haystack(key string) string {
	meta := n.cache.Resolve(n.FullKeyOf(key))
	parts := append([]string{key, meta.Value}, meta.Comments...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Reframe recomputes the scroll window after an index change so the
// selection stays visible within visibleRows.
func (n *Navigator) Reframe(visibleRows int) {
	if visibleRows <= 0 {
		n.scrollOffset = 0
		return
	}
	if n.index < n.scrollOffset {
		n.scrollOffset = n.index
	} else if n.index >= n.scrollOffset+visibleRows {
		n.scrollOffset = n.index - visibleRows + 1
	}
	maxOffset := len(n.siblingKeys) - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.scrollOffset > maxOffset {
		n.scrollOffset = maxOffset
	}
	if n.scrollOffset < 0 {
		n.scrollOffset = 0
	}
}
