// Package store places fetched datfiles into the output directory
// under their canonical header names.
package store
