// Package dag is a small directed graph keyed by string ids. It records the
// prerequisite relation between focus templates: an edge from A to B means
// that B lists A among its prerequisites.
//
// All listing methods return ids in lexicographic order so that anything
// derived from a walk of the graph is deterministic.
package dag
