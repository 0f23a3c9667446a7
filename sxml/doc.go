// Package sxml is a minimal XML tree codec: parse a document into an
// in-memory tree, render a tree back to text, and check well-formedness.
//
// Three entry points, usable independently:
//   - Parse(input) (*Node, error)
//   - Build(root) string / BuildWithOptions(root, opts) string
//   - Valid(input) bool
//
// # Data Model
//
// A document is a tree of Node values. A node is either an element (tag,
// ordered attributes, ordered children) or a text leaf (literal content),
// discriminated by Kind. A successful parse returns exactly one root
// element; character data and CDATA content become text children of the
// enclosing element, comments produce no node at all.
//
// # Scope
//
// sxml handles tag structure only. There is no namespace resolution, no
// DTD or schema validation, and no entity decoding: &amp; and friends pass
// through both directions verbatim. Processing instructions are not
// recognized. Input is a complete in-memory string; there is no streaming
// mode.
//
// # Round Trips
//
// Parse skips any whitespace run that leads up to a tag, so the indentation
// and separators Build emits never come back as whitespace-only text nodes.
// A text run, however, extends to the next tag opener: building with a
// non-empty Separator places layout bytes after text content, and those are
// re-read as part of the text. Exact structural round trips are therefore
// guaranteed for element-only trees under any options, and for all trees
// when built with a zero IndentSize and an empty Separator. Build performs
// no escaping, so a tree constructed with raw <, >, or quote characters in
// content produces output that will not parse back.
//
// # Errors
//
// Parse fails on the first problem; there is no recovery or partial result.
// Errors are *ParseError values carrying the input position and wrapping one
// of the sentinel errors (ErrUnexpectedEOF, ErrUnexpectedChar,
// ErrMismatchedTag, ErrNoRootElement, ErrTrailingContent) for errors.Is.
// Valid never fails: it converts any parse error to false.
//
// # Concurrency
//
// Calls share no state. Concurrent parses and builds on independent inputs
// need no coordination.
package sxml
