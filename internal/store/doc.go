// Package store provides file persistence for linky: atomic file writes
// and the capture manifest that records what a capture produced.
package store
