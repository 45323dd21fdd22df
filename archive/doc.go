// Package archive extracts datfiles from the zip containers the
// archives serve them in.
package archive
