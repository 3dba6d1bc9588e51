// Package focusid holds the naming conventions for composed focus
// identifiers.
//
// Composed ids are plain concatenations of a template id and country tags.
// Other parts of a tree (prerequisites, relative positions, events) refer to
// these ids by string, so every builder here must keep its exact
// concatenation order and separators.
package focusid
