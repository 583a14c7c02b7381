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

// Package demo holds the sample enumerations and prints enumerations as tables.
package demo

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/tomoncle/labelenum/enum"
	"github.com/tomoncle/labelenum/types"
)

var Color = enum.Must(enum.NewStr("Color",
	enum.ValueWithLabel("RED", "red", "Red Like Blood"),
	enum.ValueOnly("GREEN", "green"),
	enum.ValueWithLabel("BLUE", "blue", "Love Is Blue"),
))

var Switch = enum.Must(enum.NewInt("Switch",
	enum.ValueWithLabel("ON", 1, "turn on"),
	enum.ValueOnly("OFF", 0),
))

var status = enum.NewLazy(func() (*enum.Enum[any], error) {
	return enum.New[any]("Status",
		enum.ValueWithLabel("DRAFT", "draft", "Draft"),
		enum.ValueOnly("PUBLISHED", "published"),
		enum.ValueWithLabel("ARCHIVED", "archived", "Archived"),
	)
})

// Status is defined on first call.
func Status() *enum.Enum[any] {
	return status.MustGet()
}

// Samples returns the sample enumerations in a fixed order.
func Samples() []types.EnumType {
	return []types.EnumType{Color, Switch, Status()}
}

// Print writes e as a table of its members followed by its name and label lists.
func Print(w io.Writer, e types.EnumType) error {
	entries := e.Entries()
	if _, err := fmt.Fprintf(w, "%s (%d members)\n", e.TypeName(), len(entries)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "value", "display", "string"})
	table.SetAutoWrapText(false)
	for _, m := range entries {
		table.Append([]string{m.Name(), fmt.Sprintf("%#v", m.RawValue()), m.Display(), m.String()})
	}
	table.Render()

	if _, err := fmt.Fprintf(w, "names: %v\n", e.Names()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "display names: %q\n", e.DisplayNames())
	return err
}

// PrintAll prints every enumeration, separated by a blank line.
func PrintAll(w io.Writer, enums []types.EnumType) error {
	for i, e := range enums {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := Print(w, e); err != nil {
			return fmt.Errorf("failed to print %s: %w", e.TypeName(), err)
		}
	}
	return nil
}

// Describe writes one member of e, found by name or by the rendered value.
func Describe(w io.Writer, e types.EnumType, key string) error {
	m, ok := Find(e, key)
	if !ok {
		return &enum.Error{Kind: enum.UnknownNameErr, Enum: e.TypeName(), Subject: fmt.Sprintf("%q", key)}
	}
	_, err := fmt.Fprintf(w, "%s.%s\n  value:   %#v\n  display: %s\n  string:  %s\n",
		e.TypeName(), m.Name(), m.RawValue(), m.Display(), m.String())
	return err
}

// Find returns the member whose name, or whose value printed with %v, is key.
// Names are tried first.
func Find(e types.EnumType, key string) (types.BaseEnum, bool) {
	entries := e.Entries()
	for _, m := range entries {
		if m.Name() == key {
			return m, true
		}
	}
	for _, m := range entries {
		if fmt.Sprint(m.RawValue()) == key {
			return m, true
		}
	}
	return nil, false
}
