// Package foldertree builds an in-memory model of a project folder.
//
// It recursively lists a directory through a billy.Filesystem, skips a fixed
// set of ignored names, and records every remaining entry as a file (with
// size and extension) or a directory (with its children), in listing order.
// Listing failures are reported to the operator and resolve to an empty
// subtree without aborting the rest of the scan.
package foldertree
