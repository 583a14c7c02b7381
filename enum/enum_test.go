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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/labelenum/types"
)

// boxed is comparable by type but may hold a value that is not.
type boxed struct{ X any }

func newColor(t *testing.T) *Enum[string] {
	t.Helper()
	e, err := NewStr("Color",
		ValueWithLabel("RED", "red", "Red Like Blood"),
		ValueOnly("GREEN", "green"),
		ValueWithLabel("BLUE", "blue", "Love Is Blue"),
	)
	require.NoError(t, err)
	return e
}

func newSwitch(t *testing.T) *Enum[int] {
	t.Helper()
	e, err := NewInt("Switch",
		ValueWithLabel("ON", 1, "turn on"),
		ValueOnly("OFF", 0),
	)
	require.NoError(t, err)
	return e
}

func newStatus(t *testing.T) *Enum[any] {
	t.Helper()
	e, err := New[any]("Status",
		ValueWithLabel("DRAFT", "draft", "Draft"),
		ValueOnly("PUBLISHED", "published"),
		ValueWithLabel("ARCHIVED", "archived", "Archived"),
	)
	require.NoError(t, err)
	return e
}

func TestStrEnum(t *testing.T) {
	color := newColor(t)

	t.Run("lookup by value returns label", func(t *testing.T) {
		m, err := color.ByValue("blue")
		require.NoError(t, err)
		assert.Equal(t, "BLUE", m.Name())
		assert.Equal(t, "Love Is Blue", m.Display())
		assert.Equal(t, "Love Is Blue", m.GetDisplay())
	})

	t.Run("value only member has empty label", func(t *testing.T) {
		m, err := color.ByName("GREEN")
		require.NoError(t, err)
		assert.Equal(t, "", m.Display())
		assert.Equal(t, "", m.GetDisplay())
	})

	t.Run("unknown value", func(t *testing.T) {
		m, err := color.ByValue("purple")
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrUnknownValue)
	})

	t.Run("wrong kind is a type mismatch", func(t *testing.T) {
		_, err := color.ByValue(1)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("named string types are accepted", func(t *testing.T) {
		type colorName string
		m, err := color.ByValue(colorName("red"))
		require.NoError(t, err)
		assert.Equal(t, "RED", m.Name())
	})

	t.Run("string renders the value", func(t *testing.T) {
		m, _ := color.ByName("BLUE")
		assert.Equal(t, "blue", m.String())
		assert.Equal(t, "blue", fmt.Sprint(m))
		assert.Equal(t, `<Color.BLUE: "blue">`, fmt.Sprintf("%#v", m))
	})
}

func TestIntEnum(t *testing.T) {
	sw := newSwitch(t)

	t.Run("lookup by value", func(t *testing.T) {
		on, err := sw.ByValue(1)
		require.NoError(t, err)
		assert.Equal(t, "turn on", on.Display())

		off, err := sw.ByValue(0)
		require.NoError(t, err)
		assert.Equal(t, "", off.Display())
		assert.Equal(t, "OFF", off.Name())
	})

	t.Run("string value is a type mismatch", func(t *testing.T) {
		m, err := sw.ByValue("1")
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		is, kind := IsEnumError(err)
		assert.True(t, is)
		assert.Equal(t, TypeMismatchErr, kind)
	})

	t.Run("bool is not an integer", func(t *testing.T) {
		_, err := sw.ByValue(true)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("other integer types resolve", func(t *testing.T) {
		for _, v := range []any{int8(1), int64(1), uint(1), uint64(1)} {
			m, err := sw.ByValue(v)
			require.NoError(t, err, "%T", v)
			assert.Equal(t, "ON", m.Name())
		}
	})

	t.Run("out of range integer is unknown", func(t *testing.T) {
		_, err := sw.ByValue(uint64(1 << 63))
		assert.ErrorIs(t, err, ErrUnknownValue)
	})

	t.Run("string renders the decimal value", func(t *testing.T) {
		on, _ := sw.ByName("ON")
		assert.Equal(t, "1", on.String())
		assert.Equal(t, "<Switch.ON: 1>", on.GoString())
	})
}

func TestAnyEnum(t *testing.T) {
	status := newStatus(t)

	t.Run("names in declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"DRAFT", "PUBLISHED", "ARCHIVED"}, status.Names())
	})

	t.Run("value only member has empty label", func(t *testing.T) {
		m, err := status.ByName("PUBLISHED")
		require.NoError(t, err)
		assert.Equal(t, "", m.Display())
	})

	t.Run("foreign value type is unknown", func(t *testing.T) {
		_, err := status.ByValue(5)
		assert.ErrorIs(t, err, ErrUnknownValue)
		assert.NotErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("non comparable value is unknown", func(t *testing.T) {
		_, err := status.ByValue([]string{"draft"})
		assert.ErrorIs(t, err, ErrUnknownValue)
	})

	t.Run("comparable type holding a non comparable value is unknown", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
		}{
			{"struct field", boxed{X: []int{1}}},
			{"array element", [1]any{map[string]int{}}},
			{"function", func() {}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var err error
				require.NotPanics(t, func() { _, err = status.ByValue(tt.value) })
				assert.ErrorIs(t, err, ErrUnknownValue)

				require.NotPanics(t, func() { _, err = status.Lookup(tt.value) })
				assert.ErrorIs(t, err, ErrUnknownValue)
			})
		}
	})

	t.Run("typed lookup of a struct holding a slice is unknown", func(t *testing.T) {
		boxes, err := New[boxed]("Box", ValueOnly("ONE", boxed{X: 1}))
		require.NoError(t, err)

		one, err := boxes.Lookup(boxed{X: 1})
		require.NoError(t, err)
		assert.Equal(t, "ONE", one.Name())

		require.NotPanics(t, func() { _, err = boxes.Lookup(boxed{X: []int{1}}) })
		assert.ErrorIs(t, err, ErrUnknownValue)
		require.NotPanics(t, func() { _, err = boxes.ByValue(boxed{X: []int{1}}) })
		assert.ErrorIs(t, err, ErrUnknownValue)
	})

	t.Run("nil value is unknown", func(t *testing.T) {
		_, err := status.ByValue(nil)
		assert.ErrorIs(t, err, ErrUnknownValue)
	})

	t.Run("string renders the qualified name", func(t *testing.T) {
		m, _ := status.ByName("DRAFT")
		assert.Equal(t, "Status.DRAFT", m.String())
		assert.Equal(t, `<Status.DRAFT: "draft">`, m.GoString())
	})

	t.Run("mixed value types", func(t *testing.T) {
		mixed, err := New[any]("Mixed",
			ValueOnly("TEXT", "1"),
			ValueOnly("NUMBER", 1),
			ValueOnly("PAIR", [2]int{1, 2}),
		)
		require.NoError(t, err)

		text, err := mixed.ByValue("1")
		require.NoError(t, err)
		assert.Equal(t, "TEXT", text.Name())

		number, err := mixed.Lookup(1)
		require.NoError(t, err)
		assert.Equal(t, "NUMBER", number.Name())

		pair, err := mixed.ByValue([2]int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, "PAIR", pair.Name())
	})
}

func TestRoundTripProperties(t *testing.T) {
	color := newColor(t)
	for _, m := range color.Members() {
		byName, err := color.ByName(m.Name())
		require.NoError(t, err)
		assert.Same(t, m, byName)

		byValue, err := color.Lookup(m.Value())
		require.NoError(t, err)
		assert.Same(t, m, byValue)

		assert.Equal(t, m.Display(), m.GetDisplay())
		assert.True(t, color.Contains(m))
	}

	sw := newSwitch(t)
	for m := range sw.All() {
		byValue, err := sw.ByValue(m.RawValue())
		require.NoError(t, err)
		assert.Same(t, m, byValue)
	}

	status := newStatus(t)
	for i, m := range status.Members() {
		assert.Equal(t, i, m.Index())
		assert.Equal(t, "Status", m.TypeName())
		byValue, err := status.Lookup(m.Value())
		require.NoError(t, err)
		assert.Same(t, m, byValue)
	}

	for _, e := range []types.EnumType{color, sw, status} {
		seen := map[string]bool{}
		for _, entry := range e.Entries() {
			assert.True(t, entry.IsValid())
			assert.False(t, seen[entry.Name()], "duplicate name %s", entry.Name())
			seen[entry.Name()] = true
		}
	}
}

func TestUnknownName(t *testing.T) {
	color := newColor(t)
	m, err := color.ByName("PURPLE")
	assert.Nil(t, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownName)

	var enumErr *Error
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, "Color", enumErr.Enum)
	assert.Equal(t, `enum Color: unknown name "PURPLE"`, err.Error())

	// lookups are case sensitive
	_, err = color.ByName("red")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestViews(t *testing.T) {
	color := newColor(t)

	t.Run("members are a copy", func(t *testing.T) {
		members := color.Members()
		members[0] = nil
		assert.NotNil(t, color.Members()[0])
		assert.Equal(t, 3, color.Len())
	})

	t.Run("names are a copy", func(t *testing.T) {
		names := color.Names()
		names[0] = "CHANGED"
		assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, color.Names())
	})

	t.Run("display names follow declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"Red Like Blood", "", "Love Is Blue"}, color.DisplayNames())
	})

	t.Run("member map", func(t *testing.T) {
		mm := color.MemberMap()
		assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, mm.Keys())
		blue, ok := mm.Get("BLUE")
		require.True(t, ok)
		assert.Equal(t, "blue", blue.Value())
	})

	t.Run("value map", func(t *testing.T) {
		vm := color.ValueMap()
		assert.Equal(t, []string{"red", "green", "blue"}, vm.Keys())
		green, ok := vm.Get("green")
		require.True(t, ok)
		assert.Equal(t, "GREEN", green.Name())
	})

	t.Run("entries", func(t *testing.T) {
		entries := color.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "RED", entries[0].Name())
		assert.Equal(t, "red", entries[0].RawValue())
		assert.Equal(t, "Red Like Blood", entries[0].Display())
	})

	t.Run("contains rejects members of another enumeration", func(t *testing.T) {
		other := newColor(t)
		red, _ := other.ByName("RED")
		assert.False(t, color.Contains(red))
		assert.False(t, color.Contains(nil))
	})

	assert.Equal(t, "Color(str)[RED GREEN BLUE]", color.String())
}

func TestNilMember(t *testing.T) {
	var m *Member[string]
	assert.False(t, m.IsValid())
	assert.Equal(t, types.IllegalName, m.String())
	assert.Equal(t, "<unknown>", m.GoString())
}
