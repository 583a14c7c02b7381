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

import "fmt"

// Declaration is one entry of an enumeration's fixed member list. Only the
// definition path reads declarations; lookups never do.
type Declaration struct {
	name   string
	values []any
}

// ValueOnly declares a member without a label.
func ValueOnly(name string, value any) Declaration {
	return Declaration{name: name, values: []any{value}}
}

// ValueWithLabel declares a member with a display label.
func ValueWithLabel(name string, value any, label string) Declaration {
	return Declaration{name: name, values: []any{value, label}}
}

// Tuple declares a member from a positional (value) or (value, label) entry,
// as found in declaration files. Arity and element types are checked when
// the enumeration is defined.
func Tuple(name string, values ...any) Declaration {
	copied := make([]any, len(values))
	copy(copied, values)
	return Declaration{name: name, values: copied}
}

// Name returns the declared member name.
func (d Declaration) Name() string {
	return d.name
}

func (d Declaration) String() string {
	return fmt.Sprintf("%s=%v", d.name, d.values)
}
