// Package output renders composed focus trees: as Paradox script for the
// game, as HCL in the corpus format, and the recorded events next to them.
package output
