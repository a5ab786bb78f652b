// Package store manages the on-disk secret store.
//
// The store is a flat directory, .env/ relative to the working directory,
// holding one file per secret key:
//
//	.env/<key>.txt
//
// Files are append-only from this package's perspective: values are
// concatenated with no delimiter, and nothing here ever truncates or
// deletes a secret file. The directory is created lazily and persists
// across runs.
//
// Concurrent invocations are not coordinated; the store holds no locks.
// This is an operator-driven tool and interleaved appends from parallel
// runs are accepted as undefined ordering.
package store
