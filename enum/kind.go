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
	"math"
	"reflect"
	"strings"
)

// Kind is the backing kind of an enumeration's values.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	default:
		return "any"
	}
}

// ParseKind accepts the names used in declaration files. An empty string is KindAny.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "string":
		return KindString, nil
	case "int", "integer":
		return KindInt, nil
	case "any", "":
		return KindAny, nil
	default:
		return KindAny, fmt.Errorf("unsupported enum kind: %q, supported kinds: [str int any]", s)
	}
}

// valueCheck is the outcome of checking a raw value against a backing kind.
type valueCheck int

const (
	valueOK valueCheck = iota
	valueWrongKind
	valueOutOfRange
)

// asString accepts any value whose Go kind is string, named string types included.
func asString(raw any) (string, valueCheck) {
	if s, ok := raw.(string); ok {
		return s, valueOK
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.String {
		return "", valueWrongKind
	}
	return rv.String(), valueOK
}

// asInt accepts every Go integer kind. bool is not an integer.
func asInt(raw any) (int, valueCheck) {
	if i, ok := raw.(int); ok {
		return i, valueOK
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, valueOutOfRange
		}
		return int(n), valueOK
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, valueOutOfRange
		}
		return int(n), valueOK
	default:
		return 0, valueWrongKind
	}
}

// asComparable accepts values assignable to V that can be a map key.
func asComparable[V comparable](raw any) (V, valueCheck) {
	var zero V
	if raw == nil || !hashable(raw) {
		return zero, valueWrongKind
	}
	v, ok := raw.(V)
	if !ok {
		return zero, valueWrongKind
	}
	return v, valueOK
}

// hashable reports whether raw can be used as a map key without panicking.
// Interfaces nested in structs and arrays are checked by their dynamic values.
func hashable(raw any) bool {
	return raw == nil || reflect.ValueOf(raw).Comparable()
}

// holdsInterface reports whether a value of type t may carry a dynamic value
// that is not comparable, even though t itself is.
func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// coerce converts raw into V according to kind. The constructors guarantee
// that V is string for KindString and int for KindInt.
func coerce[V comparable](kind Kind, raw any) (V, valueCheck) {
	var zero V
	switch kind {
	case KindString:
		s, check := asString(raw)
		if check != valueOK {
			return zero, check
		}
		return any(s).(V), valueOK
	case KindInt:
		i, check := asInt(raw)
		if check != valueOK {
			return zero, check
		}
		return any(i).(V), valueOK
	default:
		return asComparable[V](raw)
	}
}

func describeValue(raw any) string {
	if raw == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%#v (%T)", raw, raw)
}
