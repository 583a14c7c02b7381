// Package enum provides labeled enumerations: closed sets of named members
// that carry a canonical value (string, integer or any comparable value) and
// an optional display label. Enumerations are defined once from a fixed list
// of declarations and are read-only afterward.
package enum
