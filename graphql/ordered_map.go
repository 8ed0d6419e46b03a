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

import (
	jsoniter "github.com/json-iterator/go"
)

// GraphQL requires that the field, enum value and input field maps carried by a schema preserve
// the order in which they were defined in the source document (or config). A plain Go map cannot
// offer that, so FieldMap, EnumValueMap and InputFieldMap are backed by an insertion-ordered
// structure instead: a slice recording definition order plus a map for O(1) lookup by name.
//
// These maps keep the order in which entries are added to them. Every schema, whether assembled by
// hand or built by schemabuilder from an SDL document, fills them from Fields,
// EnumValueDefinitionMap and InputFields, which are plain Go maps, so the resulting order follows
// Go's unspecified map iteration order. The order in which fields, enum values and input fields
// appear in an SDL document is not kept.

// FieldMap maps field name to the Field, preserving definition order.
type FieldMap struct {
	order  []string
	byName map[string]Field
}

// newFieldMap creates a FieldMap with capacity for n fields.
func newFieldMap(n int) FieldMap {
	if n == 0 {
		return FieldMap{}
	}
	return FieldMap{
		order:  make([]string, 0, n),
		byName: make(map[string]Field, n),
	}
}

func (m *FieldMap) add(name string, f Field) {
	if _, exists := m.byName[name]; !exists {
		m.order = append(m.order, name)
	}
	if m.byName == nil {
		m.byName = make(map[string]Field)
	}
	m.byName[name] = f
}

// Lookup finds the field with the given name or returns nil if there's no such one.
func (m FieldMap) Lookup(name string) Field {
	return m.byName[name]
}

// Len returns the number of fields in the map.
func (m FieldMap) Len() int {
	return len(m.order)
}

// Names returns field names in definition order.
func (m FieldMap) Names() []string {
	return m.order
}

// Range calls f for each field in definition order. Iteration stops early if f returns false.
func (m FieldMap) Range(f func(name string, field Field) bool) {
	for _, name := range m.order {
		if !f(name, m.byName[name]) {
			return
		}
	}
}

// MarshalJSON implements json.Marshaler by emitting fields in definition order.
func (m FieldMap) MarshalJSON() ([]byte, error) {
	return marshalOrderedMap(len(m.order), func(i int) (string, interface{}) {
		name := m.order[i]
		return name, m.byName[name]
	})
}

// EnumValueMap maps enum value name to the EnumValue, preserving definition order.
type EnumValueMap struct {
	order  []string
	byName map[string]EnumValue
}

func newEnumValueMap(n int) EnumValueMap {
	if n == 0 {
		return EnumValueMap{}
	}
	return EnumValueMap{
		order:  make([]string, 0, n),
		byName: make(map[string]EnumValue, n),
	}
}

func (m *EnumValueMap) add(name string, v EnumValue) {
	if _, exists := m.byName[name]; !exists {
		m.order = append(m.order, name)
	}
	if m.byName == nil {
		m.byName = make(map[string]EnumValue)
	}
	m.byName[name] = v
}

// Lookup finds the enum value with the given name or returns nil if there's no such one.
func (m EnumValueMap) Lookup(name string) EnumValue {
	return m.byName[name]
}

// Len returns the number of values in the map.
func (m EnumValueMap) Len() int {
	return len(m.order)
}

// Names returns enum value names in definition order.
func (m EnumValueMap) Names() []string {
	return m.order
}

// Range calls f for each enum value in definition order. Iteration stops early if f returns false.
func (m EnumValueMap) Range(f func(name string, value EnumValue) bool) {
	for _, name := range m.order {
		if !f(name, m.byName[name]) {
			return
		}
	}
}

// Slice returns the enum values in definition order.
func (m EnumValueMap) Slice() []EnumValue {
	values := make([]EnumValue, len(m.order))
	for i, name := range m.order {
		values[i] = m.byName[name]
	}
	return values
}

// InputFieldMap maps field name to the InputField, preserving definition order.
type InputFieldMap struct {
	order  []string
	byName map[string]InputField
}

func newInputFieldMap(n int) InputFieldMap {
	if n == 0 {
		return InputFieldMap{}
	}
	return InputFieldMap{
		order:  make([]string, 0, n),
		byName: make(map[string]InputField, n),
	}
}

func (m *InputFieldMap) add(name string, f InputField) {
	if _, exists := m.byName[name]; !exists {
		m.order = append(m.order, name)
	}
	if m.byName == nil {
		m.byName = make(map[string]InputField)
	}
	m.byName[name] = f
}

// Lookup finds the input field with the given name or returns nil if there's no such one.
func (m InputFieldMap) Lookup(name string) InputField {
	return m.byName[name]
}

// Len returns the number of input fields in the map.
func (m InputFieldMap) Len() int {
	return len(m.order)
}

// Names returns input field names in definition order.
func (m InputFieldMap) Names() []string {
	return m.order
}

// Range calls f for each input field in definition order. Iteration stops early if f returns
// false.
func (m InputFieldMap) Range(f func(name string, field InputField) bool) {
	for _, name := range m.order {
		if !f(name, m.byName[name]) {
			return
		}
	}
}

// marshalOrderedMap streams an ordered (name, value) sequence out as a JSON object without
// allocating an intermediate map, mirroring how jsoniter encodes struct fields in declaration
// order.
func marshalOrderedMap(n int, at func(i int) (string, interface{})) ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	for i := 0; i < n; i++ {
		if i > 0 {
			stream.WriteMore()
		}
		name, value := at(i)
		stream.WriteString(name)
		stream.WriteRaw(":")
		stream.WriteVal(value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	// Copy out of the pooled stream's buffer before it's returned to the pool.
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}
