// Package memory provides in-memory implementations of driven ports.
// They back tests, and stand in for the on-disk stores when those
// cannot be opened.
package memory
