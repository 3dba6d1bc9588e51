// Package templatestore loads the focus template corpus and serves read-only
// copies of its templates.
//
// # Corpus format
//
// Templates are declared in HCL documents as labelled blocks:
//
//	focus "WarPlan" {
//	  text                 = "WarPlan"
//	  prerequisite         = ["= { focus = Lim }"]
//	  relative_position_id = "Lim"
//	  x                    = 0
//	  y                    = 1
//	  available            = <<EOT
//	= {
//	  #TRUCE
//	  has_war = no
//	}
//	EOT
//	}
//
//	shared_focus "political_effort" { ... }
//
// Every other top-level attribute or block is ignored, so a corpus file may
// carry unrelated content (for instance a `focus_tree` block).
//
// # Lifecycle
//
// A Pool is filled once, before composition starts, through EnsureLoaded.
// Later calls are no-ops. Templates are never mutated after loading: Get
// always hands out an independent copy.
package templatestore
