package views

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

type keyKind int

const (
	kindNull keyKind = iota
	kindString
	kindNumber
)

// Key is one sortable value extracted from an item. Null keys sort last
// regardless of direction.
type Key struct {
	kind keyKind
	str  string
	num  float64
}

func StringKey(s string) Key {
	return Key{kind: kindString, str: s}
}

func NumberKey(n float64) Key {
	return Key{kind: kindNumber, num: n}
}

// DateKey treats an unparseable or empty date as a null key.
func DateKey(iso string) Key {
	t, ok := ParseDateUTC(iso)
	if !ok {
		return NullKey()
	}
	return Key{kind: kindNumber, num: float64(t.Unix())}
}

func NullKey() Key {
	return Key{kind: kindNull}
}

// String comparison is locale aware. The collator is not safe for
// concurrent use, hence the lock.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.BrazilianPortuguese, collate.Loose)
)

func compareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// SortBy returns a new slice sorted by the extracted key. Null keys sink
// to the end in both directions; the sort is stable so equal keys keep
// their stored order.
func SortBy[T any](items []T, dir Direction, key func(T) Key) []T {
	sorted := append([]T(nil), items...)
	keys := make([]Key, len(sorted))
	for i, item := range sorted {
		keys[i] = key(item)
	}

	indices := make([]int, len(sorted))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(x, y int) bool {
		a, b := keys[indices[x]], keys[indices[y]]
		if a.kind == kindNull || b.kind == kindNull {
			// Nulls last regardless of direction.
			return a.kind != kindNull && b.kind == kindNull
		}
		var less bool
		if a.kind == kindString || b.kind == kindString {
			less = compareStrings(a.asString(), b.asString()) < 0
		} else {
			less = a.num < b.num
		}
		if dir == Descending {
			return !less && !a.equal(b)
		}
		return less
	})

	result := make([]T, len(sorted))
	for i, idx := range indices {
		result[i] = sorted[idx]
	}
	return result
}

func (k Key) asString() string {
	if k.kind == kindNumber {
		return ""
	}
	return k.str
}

func (k Key) equal(other Key) bool {
	if k.kind != other.kind {
		return false
	}
	switch k.kind {
	case kindString:
		return compareStrings(k.str, other.str) == 0
	case kindNumber:
		return k.num == other.num
	default:
		return true
	}
}

// TableSort tracks the active sort column of one table. Selecting the
// active column toggles direction; selecting a new column resets to
// ascending.
type TableSort struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

func (t *TableSort) Toggle(key string) {
	if t.Key == key {
		if t.Dir == Ascending {
			t.Dir = Descending
		} else {
			t.Dir = Ascending
		}
		return
	}
	t.Key = key
	t.Dir = Ascending
}
