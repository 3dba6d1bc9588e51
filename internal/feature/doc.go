// Package feature maps the feature names used by selection rules to the
// focus tree operations that compose them.
//
// A Registry is populated once at start-up by Modules, then consulted for
// every country. Built-in features are registered by Builtin; callers may
// add their own before composition starts.
package feature
