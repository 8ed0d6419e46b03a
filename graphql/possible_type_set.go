/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

// PossibleTypeSet keeps track of the concrete Object types that can satisfy an abstract type
// (the member types of a Union, or the implementors of an Interface).
type PossibleTypeSet struct {
	types map[Object]bool
}

// NewPossibleTypeSet creates an empty PossibleTypeSet.
func NewPossibleTypeSet() PossibleTypeSet {
	return PossibleTypeSet{
		types: map[Object]bool{},
	}
}

// Add registers t as a possible type in the set. Adding the same type twice is a no-op.
func (s PossibleTypeSet) Add(t Object) {
	s.types[t] = true
}

// Contains reports whether t was registered in the set.
func (s PossibleTypeSet) Contains(t Object) bool {
	return s.types[t]
}

// Len returns the number of possible types in the set.
func (s PossibleTypeSet) Len() int {
	return len(s.types)
}

// DoesIntersect reports whether s and other share at least one possible type.
func (s PossibleTypeSet) DoesIntersect(other PossibleTypeSet) bool {
	small, big := s, other
	if len(big.types) < len(small.types) {
		small, big = big, small
	}
	for t := range small.types {
		if big.types[t] {
			return true
		}
	}
	return false
}

// Slice returns the possible types as a slice, in unspecified order, so callers (such as
// introspection's "possibleTypes" field) can hand the executor something it can complete as a
// GraphQL list.
func (s PossibleTypeSet) Slice() []Object {
	result := make([]Object, 0, len(s.types))
	for t := range s.types {
		result = append(result, t)
	}
	return result
}
