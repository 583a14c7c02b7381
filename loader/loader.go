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

// Package loader defines enumerations from YAML declaration files.
//
//	enums:
//	  - name: Color
//	    kind: str
//	    members:
//	      RED: [red, Red Like Blood]
//	      GREEN: green
//
// A scalar member entry declares a value without a label; a sequence is the
// positional (value) or (value, label) form. Members keep the file order.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/tomoncle/labelenum/enum"
	"github.com/tomoncle/labelenum/types"
	"github.com/tomoncle/labelenum/utils"
)

var (
	ErrUnknownType  = errors.New("unknown enum type")
	ErrKindMismatch = errors.New("enum kind mismatch")
)

var logger = utils.NewLogger("LOADER")

type declarationFile struct {
	Enums []typeDeclaration `yaml:"enums"`
}

type typeDeclaration struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"`
	Members yaml.Node `yaml:"members"`
}

// Catalog holds the enumerations of one declaration file in file order.
type Catalog struct {
	order  []types.EnumType
	byName map[string]types.EnumType
}

// Load reads and parses the declaration file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("path", path).WithField("types", len(c.order)).Debug("Loaded enum declarations")
	return c, nil
}

// LoadFS is Load for a file inside fsys, such as an embedded directory.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("path", path).WithField("types", len(c.order)).Debug("Loaded enum declarations")
	return c, nil
}

// Parse defines every enumeration in data. Problems of all types are
// reported together and no catalog is returned when there is any.
func Parse(data []byte) (*Catalog, error) {
	var file declarationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse declaration file: %w", err)
	}

	c := &Catalog{byName: make(map[string]types.EnumType, len(file.Enums))}
	seen := make(map[string]bool, len(file.Enums))
	var result *multierror.Error
	for _, td := range file.Enums {
		if seen[td.Name] && td.Name != "" {
			result = multierror.Append(result, &enum.Error{
				Kind:   enum.DuplicateNameErr,
				Enum:   td.Name,
				Detail: "enum type is already declared",
			})
			continue
		}
		seen[td.Name] = true
		e, err := td.define()
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		c.order = append(c.order, e)
		c.byName[td.Name] = e
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

func (td typeDeclaration) define() (types.EnumType, error) {
	kind, err := enum.ParseKind(td.Kind)
	if err != nil {
		return nil, &enum.Error{Kind: enum.InvalidDeclarationErr, Enum: td.Name, Detail: err.Error()}
	}
	// malformed entries are skipped so the well formed ones are still checked
	decls, declErr := td.declarations()

	var e types.EnumType
	switch kind {
	case enum.KindString:
		e, err = wrap(enum.NewStr(td.Name, decls...))
	case enum.KindInt:
		e, err = wrap(enum.NewInt(td.Name, decls...))
	default:
		e, err = wrap(enum.New[any](td.Name, decls...))
	}
	if declErr != nil {
		return nil, multierror.Append(declErr, err)
	}
	return e, err
}

// wrap avoids returning a typed nil inside the interface.
func wrap[V comparable](e *enum.Enum[V], err error) (types.EnumType, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (td typeDeclaration) declarations() ([]enum.Declaration, error) {
	node := &td.Members
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, &enum.Error{
			Kind:   enum.InvalidDeclarationErr,
			Enum:   td.Name,
			Detail: fmt.Sprintf("line %d: members must be a mapping of name to value", node.Line),
		}
	}

	var result *multierror.Error
	decls := make([]enum.Declaration, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		d, err := declaration(key.Value, val)
		if err != nil {
			result = multierror.Append(result, &enum.Error{
				Kind:    enum.InvalidDeclarationErr,
				Enum:    td.Name,
				Subject: key.Value,
				Detail:  fmt.Sprintf("line %d: %v", val.Line, err),
			})
			continue
		}
		decls = append(decls, d)
	}
	return decls, result.ErrorOrNil()
}

func declaration(name string, node *yaml.Node) (enum.Declaration, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return enum.Declaration{}, err
		}
		return enum.Tuple(name, v), nil
	case yaml.SequenceNode:
		values := make([]any, len(node.Content))
		for i, item := range node.Content {
			if err := item.Decode(&values[i]); err != nil {
				return enum.Declaration{}, err
			}
		}
		return enum.Tuple(name, values...), nil
	default:
		return enum.Declaration{}, errors.New("member must be a value or a [value, label] list")
	}
}

// Types returns the enumerations in file order.
func (c *Catalog) Types() []types.EnumType {
	out := make([]types.EnumType, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Lookup(name string) (types.EnumType, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Str returns the string enumeration declared as name.
func (c *Catalog) Str(name string) (*enum.Enum[string], error) {
	return typed[string](c, name, enum.KindString)
}

// Int returns the integer enumeration declared as name.
func (c *Catalog) Int(name string) (*enum.Enum[int], error) {
	return typed[int](c, name, enum.KindInt)
}

// Any returns the enumeration of kind any declared as name.
func (c *Catalog) Any(name string) (*enum.Enum[any], error) {
	return typed[any](c, name, enum.KindAny)
}

func typed[V comparable](c *Catalog, name string, kind enum.Kind) (*enum.Enum[V], error) {
	t, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	e, ok := t.(*enum.Enum[V])
	if !ok {
		return nil, fmt.Errorf("%w: %s is not of kind %s", ErrKindMismatch, name, kind)
	}
	return e, nil
}
