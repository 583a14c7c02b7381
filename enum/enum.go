/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package enum

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/tomoncle/labelenum/types"
)

// Enum is a defined enumeration: an immutable registry of members with
// name and value indexes built once by NewStr, NewInt or New. All methods
// are read-only and safe for concurrent use.
type Enum[V comparable] struct {
	typeName string
	kind     Kind
	members  []*Member[V]
	byName   *Mapping[string, *Member[V]]
	byValue  *Mapping[V, *Member[V]]

	// checkValues is set when V can hold a non comparable dynamic value.
	checkValues bool
}

var _ types.EnumType = (*Enum[string])(nil)

func (e *Enum[V]) TypeName() string { return e.typeName }

func (e *Enum[V]) Kind() Kind { return e.kind }

func (e *Enum[V]) Len() int { return len(e.members) }

// ByName returns the member declared under name.
func (e *Enum[V]) ByName(name string) (*Member[V], error) {
	if m, ok := e.byName.Get(name); ok {
		return m, nil
	}
	return nil, newError(UnknownNameErr, e.typeName, strconv.Quote(name), "")
}

// Lookup returns the member whose value equals v.
func (e *Enum[V]) Lookup(v V) (*Member[V], error) {
	if e.checkValues && !hashable(any(v)) {
		return nil, newError(UnknownValueErr, e.typeName, describeValue(v), "value is not comparable")
	}
	if m, ok := e.byValue.Get(v); ok {
		return m, nil
	}
	return nil, newError(UnknownValueErr, e.typeName, fmt.Sprintf("%#v", v), "")
}

// ByValue resolves a value of unknown static type. String and integer
// enumerations reject values of another Go kind with a TypeMismatch error
// instead of coercing them; an integer enumeration accepts any Go integer
// type. Enumerations of any other kind report a foreign value as unknown.
func (e *Enum[V]) ByValue(raw any) (*Member[V], error) {
	switch e.kind {
	case KindString, KindInt:
		v, check := coerce[V](e.kind, raw)
		switch check {
		case valueWrongKind:
			return nil, newError(TypeMismatchErr, e.typeName, describeValue(raw),
				fmt.Sprintf("lookup value must be %s", kindNoun(e.kind)))
		case valueOutOfRange:
			return nil, newError(UnknownValueErr, e.typeName, describeValue(raw), "")
		}
		return e.Lookup(v)
	default:
		if !hashable(raw) {
			return nil, newError(UnknownValueErr, e.typeName, describeValue(raw), "value is not comparable")
		}
		v, ok := raw.(V)
		if !ok {
			return nil, newError(UnknownValueErr, e.typeName, describeValue(raw), "")
		}
		return e.Lookup(v)
	}
}

// Contains reports whether m is a member of this enumeration.
func (e *Enum[V]) Contains(m *Member[V]) bool {
	if m == nil {
		return false
	}
	found, ok := e.byName.Get(m.name)
	return ok && found == m
}

// Members returns the members in declaration order.
func (e *Enum[V]) Members() []*Member[V] {
	members := make([]*Member[V], len(e.members))
	copy(members, e.members)
	return members
}

// All iterates over the members in declaration order.
func (e *Enum[V]) All() iter.Seq[*Member[V]] {
	return func(yield func(*Member[V]) bool) {
		for _, m := range e.members {
			if !yield(m) {
				return
			}
		}
	}
}

// Names returns the member names in declaration order.
func (e *Enum[V]) Names() []string {
	return e.byName.Keys()
}

// DisplayNames returns the member labels in declaration order.
func (e *Enum[V]) DisplayNames() []string {
	labels := make([]string, len(e.members))
	for i, m := range e.members {
		labels[i] = m.label
	}
	return labels
}

// Entries returns the members as kind independent values.
func (e *Enum[V]) Entries() []types.BaseEnum {
	entries := make([]types.BaseEnum, len(e.members))
	for i, m := range e.members {
		entries[i] = m
	}
	return entries
}

// MemberMap returns the name to member view.
func (e *Enum[V]) MemberMap() *Mapping[string, *Member[V]] {
	return e.byName
}

// ValueMap returns the value to member view.
func (e *Enum[V]) ValueMap() *Mapping[V, *Member[V]] {
	return e.byValue
}

func (e *Enum[V]) String() string {
	return fmt.Sprintf("%s(%s)%v", e.typeName, e.kind, e.byName.Keys())
}

func kindNoun(k Kind) string {
	switch k {
	case KindString:
		return "a string"
	case KindInt:
		return "an integer"
	default:
		return "comparable"
	}
}
