// Package fieldschema provides the schema building blocks field types use to
// describe their validation rules. Every constructor yields a
// goskema.Schema[any]; failures surface as goskema.Issues so callers receive
// an ordered list of structured (path, code, message) entries regardless of
// which field type produced them.
//
// Object and row composition delegates to the goskema DSL, which owns
// required-key bookkeeping and child path rebasing. Scalar rules (length,
// pattern, format, enum membership) are declared here because the DSL's
// shipped primitives stop at type checks and numeric bounds.
package fieldschema
