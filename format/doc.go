// Package format identifies the two datfile flavors the header reader
// understands: logiqx-style XML and the clrmamepro nested-record text
// format.
package format
