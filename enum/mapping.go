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
	"strings"
)

// Mapping is a read-only, insertion ordered view of a key to member table.
// It has no mutating methods; Keys returns a copy.
type Mapping[K comparable, V any] struct {
	keys  []K
	index map[K]V
}

func newMapping[K comparable, V any](capacity int) *Mapping[K, V] {
	return &Mapping[K, V]{
		keys:  make([]K, 0, capacity),
		index: make(map[K]V, capacity),
	}
}

func (m *Mapping[K, V]) put(k K, v V) {
	m.keys = append(m.keys, k)
	m.index[k] = v
}

func (m *Mapping[K, V]) Get(k K) (V, bool) {
	v, ok := m.index[k]
	return v, ok
}

func (m *Mapping[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

func (m *Mapping[K, V]) Len() int { return len(m.keys) }

func (m *Mapping[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}

// String renders the mapping as {k: v, ...} in insertion order.
func (m *Mapping[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v: %#v", k, m.index[k])
	}
	b.WriteByte('}')
	return b.String()
}
