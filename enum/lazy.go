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

import "sync"

// Lazy defines an enumeration on first use and caches the outcome, error
// included. The definition function runs at most once.
type Lazy[V comparable] struct {
	once   sync.Once
	define func() (*Enum[V], error)
	enum   *Enum[V]
	err    error
}

func NewLazy[V comparable](define func() (*Enum[V], error)) *Lazy[V] {
	return &Lazy[V]{define: define}
}

func (l *Lazy[V]) Get() (*Enum[V], error) {
	l.once.Do(func() {
		l.enum, l.err = l.define()
		if l.err != nil {
			l.enum = nil
		}
	})
	return l.enum, l.err
}

// MustGet is Get for callers that treat a bad definition as fatal.
func (l *Lazy[V]) MustGet() *Enum[V] {
	return Must(l.Get())
}
