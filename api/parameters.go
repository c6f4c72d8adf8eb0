package api

import "strconv"

// Parameters is an ordered list of name/value pairs used for both query
// parameters and request headers. Unlike url.Values it preserves
// insertion order, so a prepared request is byte-for-byte deterministic
// for a given descriptor.
//
// The zero value is empty and ready to use.
type Parameters struct {
	pairs []Pair
}

// Pair is a single name/value entry.
type Pair struct {
	Name  string
	Value string
}

// Insert sets name to value, replacing an existing entry in place or
// appending a new one.
func (p *Parameters) Insert(name, value string) {
	for i := range p.pairs {
		if p.pairs[i].Name == name {
			p.pairs[i].Value = value
			return
		}
	}
	p.pairs = append(p.pairs, Pair{Name: name, Value: value})
}

// InsertBool sets name to "true" or "false".
func (p *Parameters) InsertBool(name string, value bool) {
	p.Insert(name, strconv.FormatBool(value))
}

// Get returns the value for name and whether it is present.
func (p Parameters) Get(name string) (string, bool) {
	for _, pair := range p.pairs {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (p Parameters) Len() int {
	return len(p.pairs)
}

// IsEmpty reports whether no entries are present.
func (p Parameters) IsEmpty() bool {
	return len(p.pairs) == 0
}

// Pairs returns the entries in insertion order. The returned slice is a
// copy; mutating it does not affect the Parameters.
func (p Parameters) Pairs() []Pair {
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)
	return out
}
