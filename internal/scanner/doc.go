// Package scanner locates review status directives in the comment lines
// directly above a reported bug line.
//
// # Scan model
//
// Scanning starts at the line above the bug line and walks upward while
// lines are // comments. Contiguous comment lines accumulate into a block;
// the first marker-bearing line encountered closes the block, which is then
// reassembled top-to-bottom, stripped of comment prefixes, collapsed to
// single spaces, and parsed:
//
//	// codechecker_suppress [checker.name1, checker.name2] some multi
//	// line comment
//	int x = 1 / 0;   <- bug line
//
// Multiple stacked blocks are all collected, nearest block first. The first
// non-comment line ends the scan; a comment run that never reaches a marker
// is discarded.
//
// # Failure modes
//
// A block whose marker line does not match the directive grammar logs a
// warning and yields nothing; scanning continues above it. Line reader
// errors abort the scan and propagate unmodified.
package scanner
