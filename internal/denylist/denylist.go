// Package denylist implements the static access filter applied to
// phone identifiers. The list is built once at startup and is immutable
// afterwards; callers inject it explicitly rather than reading ambient
// state.
package denylist

import "strconv"

// List is an immutable set of blocked identifiers
type List struct {
	entries map[string]struct{}
}

// New builds a List from identifier strings
func New(identifiers []string) *List {
	entries := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		entries[id] = struct{}{}
	}
	return &List{entries: entries}
}

// Blocked reports whether the identifier's string form exactly matches
// a denylist entry
func (l *List) Blocked(identifier string) bool {
	_, ok := l.entries[identifier]
	return ok
}

// BlockedPhone reports whether a numeric phone identifier is blocked
func (l *List) BlockedPhone(phone int64) bool {
	return l.Blocked(strconv.FormatInt(phone, 10))
}

// Len returns the number of entries
func (l *List) Len() int {
	return len(l.entries)
}
