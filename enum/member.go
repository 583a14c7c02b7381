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
	"strconv"

	"github.com/tomoncle/labelenum/types"
)

// Member is one named constant of an enumeration. Members are created only
// while their enumeration is defined and compare by identity: every lookup
// returns the same *Member.
type Member[V comparable] struct {
	Labeled
	typeName string
	kind     Kind
	name     string
	value    V
	index    int
}

var _ types.BaseEnum = (*Member[string])(nil)

func (m *Member[V]) IsValid() bool { return m != nil }

func (m *Member[V]) Name() string { return m.name }

func (m *Member[V]) Value() V { return m.value }

// RawValue returns the value as an interface, for callers that do not know V.
func (m *Member[V]) RawValue() any { return m.value }

// Index is the member's position in declaration order.
func (m *Member[V]) Index() int { return m.index }

func (m *Member[V]) TypeName() string { return m.typeName }

// String renders the value for string and integer enumerations and the
// qualified name ("Status.DRAFT") for enumerations of any other kind.
func (m *Member[V]) String() string {
	if m == nil {
		return types.IllegalName
	}
	switch m.kind {
	case KindString:
		return any(m.value).(string)
	case KindInt:
		return strconv.Itoa(any(m.value).(int))
	default:
		return m.typeName + "." + m.name
	}
}

// GoString renders "<Type.NAME: value>" and is used by %#v.
func (m *Member[V]) GoString() string {
	if m == nil {
		return "<" + types.IllegalName + ">"
	}
	return fmt.Sprintf("<%s.%s: %#v>", m.typeName, m.name, m.value)
}
