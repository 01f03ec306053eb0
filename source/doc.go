// Package source reads occurrence rows from delimited files.
//
// Input patterns are resolved with doublestar globs, files are read with a
// header-aware table reader, and a Watcher reports when matching files change
// so a conversion can be re-run.
package source
