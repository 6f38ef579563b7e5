// Package field defines the form-field contract and its implementations: a
// shared behavior set every field type satisfies (schema construction,
// editing state, display formatting, import/export coercion), a process-wide
// type registry for string-driven construction, roughly twenty scalar field
// kinds, and the Group/Array composites that aggregate child fields into one
// reactive unit.
//
// Field instances are stateless with respect to edited data: one instance can
// back any number of editing sessions, each represented by a State created
// with NewState. Validation rules are goskema schemas built fresh on every
// Schema call, so configuration changes between calls are impossible by
// construction and schema building stays side-effect free.
//
// The package is written for a single-threaded host: editing state and cells
// carry no locks. The registry is the one piece of shared mutable state and
// synchronizes itself.
package field
