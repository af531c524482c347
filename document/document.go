// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package document provides the generic value tree that literate documents
// are parsed into.
//
// A Value is one of three shapes: a scalar string, an ordered sequence of
// values, or an ordered mapping of string keys to values. Anything else found
// in a source document (nulls, numbers, booleans) decodes to the zero Value
// and is ignored by every consumer.
package document

import "slices"

// Kind discriminates the shape of a Value.
type Kind int

const (
	// KindInvalid is the zero Kind, used for absent or unrecognized values
	KindInvalid Kind = iota
	// KindScalar is a plain string
	KindScalar
	// KindSequence is an ordered list of values
	KindSequence
	// KindMapping is an ordered map of string keys to values
	KindMapping
)

// String implements fmt.Stringer for error messages and debug logs
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// Entry is a single key/value pair of a mapping
type Entry struct {
	Key   string
	Value Value
}

// Value is a node in a parsed document tree
//
// The zero Value is valid and represents an absent or unrecognized node
type Value struct {
	kind    Kind
	scalar  string
	items   []Value
	entries []Entry
}

// Scalar constructs a scalar string value
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Sequence constructs an ordered sequence value
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Mapping constructs an ordered mapping value
//
// Entry order is preserved, it reflects document declaration order
func Mapping(entries ...Entry) Value {
	return Value{kind: KindMapping, entries: entries}
}

// Kind returns the shape of the value
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is absent or unrecognized
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// Text returns the scalar content, or "" for non-scalar values
func (v Value) Text() string { return v.scalar }

// Items returns the elements of a sequence, or nil for non-sequence values
func (v Value) Items() []Value { return v.items }

// Entries returns the key/value pairs of a mapping in declaration order,
// or nil for non-mapping values
func (v Value) Entries() []Entry { return v.entries }

// Lookup returns the value for key within a mapping.
// The second return is false if v is not a mapping or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	for _, entry := range v.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return Value{}, false
}

// WithEntry returns a copy of a mapping with key set to value, replacing an
// existing entry in place or appending a new one.
//
// Calling WithEntry on a non-mapping value returns v unchanged.
func (v Value) WithEntry(key string, value Value) Value {
	if v.kind != KindMapping {
		return v
	}
	entries := slices.Clone(v.entries)
	for i, entry := range entries {
		if entry.Key == key {
			entries[i].Value = value
			return Mapping(entries...)
		}
	}
	return Mapping(append(entries, Entry{Key: key, Value: value})...)
}

// Equal reports whether two values have the same shape and contents,
// including ordering of sequences and mapping entries
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == o.scalar
	case KindSequence:
		return slices.EqualFunc(v.items, o.items, Value.Equal)
	case KindMapping:
		return slices.EqualFunc(v.entries, o.entries, func(a, b Entry) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	default:
		return true
	}
}
