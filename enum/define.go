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
	"reflect"

	"github.com/hashicorp/go-multierror"
)

// NewStr defines a string backed enumeration.
func NewStr(typeName string, decls ...Declaration) (*Enum[string], error) {
	return define[string](typeName, KindString, decls)
}

// NewInt defines an integer backed enumeration. Declared values may be of any
// Go integer type; they are stored as int.
func NewInt(typeName string, decls ...Declaration) (*Enum[int], error) {
	return define[int](typeName, KindInt, decls)
}

// New defines an enumeration whose values are any comparable V. Use
// New[any] for values of mixed types.
func New[V comparable](typeName string, decls ...Declaration) (*Enum[V], error) {
	return define[V](typeName, KindAny, decls)
}

// Must panics if err is non-nil. It is meant for package level definitions,
// so a bad declaration list stops the program at startup:
//
//	var Color = enum.Must(enum.NewStr("Color", ...))
func Must[V comparable](e *Enum[V], err error) *Enum[V] {
	if err != nil {
		panic(err)
	}
	return e
}

// define validates every declaration and builds the enumeration. Every
// problem is collected; when there is at least one, no enumeration is
// returned.
func define[V comparable](typeName string, kind Kind, decls []Declaration) (*Enum[V], error) {
	var result *multierror.Error
	if typeName == "" {
		result = multierror.Append(result, newError(InvalidDeclarationErr, "", "", "enum type name cannot be empty"))
	}

	e := &Enum[V]{
		typeName: typeName,
		kind:     kind,
		members:  make([]*Member[V], 0, len(decls)),
		byName:   newMapping[string, *Member[V]](len(decls)),
		byValue:  newMapping[V, *Member[V]](len(decls)),

		checkValues: holdsInterface(reflect.TypeFor[V]()),
	}

	for _, decl := range decls {
		m, err := buildMember[V](typeName, kind, decl)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if e.byName.Has(m.name) {
			result = multierror.Append(result, newError(DuplicateNameErr, typeName, m.name, "name is already declared"))
			continue
		}
		if prev, ok := e.byValue.Get(m.value); ok {
			result = multierror.Append(result, newError(DuplicateValueErr, typeName, m.name,
				fmt.Sprintf("value %#v is already used by %s", m.value, prev.name)))
			continue
		}
		m.index = len(e.members)
		e.members = append(e.members, m)
		e.byName.put(m.name, m)
		e.byValue.put(m.value, m)
	}

	if err := result.ErrorOrNil(); err != nil {
		GetLogger().Error("Failed to define enum", "enum", typeName, "kind", kind, "error", err.Error())
		return nil, err
	}
	GetLogger().Debug("Enum defined", "enum", typeName, "kind", kind, "members", len(e.members))
	return e, nil
}

// buildMember turns one declaration into a member. It is the only code path
// that constructs members.
func buildMember[V comparable](typeName string, kind Kind, decl Declaration) (*Member[V], error) {
	if decl.name == "" {
		return nil, newError(InvalidDeclarationErr, typeName, "", "member name cannot be empty")
	}
	if n := len(decl.values); n != 1 && n != 2 {
		return nil, newError(InvalidDeclarationErr, typeName, decl.name,
			fmt.Sprintf("expected (value) or (value, label), got %d elements", n))
	}

	raw := decl.values[0]
	value, check := coerce[V](kind, raw)
	switch check {
	case valueWrongKind:
		return nil, newError(TypeMismatchErr, typeName, decl.name,
			fmt.Sprintf("value %s is not %s", describeValue(raw), kindNoun(kind)))
	case valueOutOfRange:
		return nil, newError(TypeMismatchErr, typeName, decl.name,
			fmt.Sprintf("value %s does not fit in int", describeValue(raw)))
	}

	label := ""
	if len(decl.values) == 2 {
		s, ok := decl.values[1].(string)
		if !ok {
			return nil, newError(TypeMismatchErr, typeName, decl.name,
				"label must be a string, not "+describeValue(decl.values[1]))
		}
		label = s
	}

	return &Member[V]{
		Labeled:  Labeled{label: label},
		typeName: typeName,
		kind:     kind,
		name:     decl.name,
		value:    value,
	}, nil
}
