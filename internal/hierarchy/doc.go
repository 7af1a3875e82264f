// Package hierarchy models the fixed six-level synthetic node hierarchy and
// its deterministic enumeration: the Node record shape, the ordered parent
// chain serialization, the Generator that walks the branching scheme, and
// the structural validation applied before write-out.
package hierarchy
