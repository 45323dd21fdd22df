// Package token provides byte-level scanning for clrmamepro-format
// datfiles.
//
// [Scanner] reads a sequential source strictly left to right with one
// byte of lookahead, splitting it into whitespace runs, bare tokens and
// quoted segments. Structure (records, key/value pairs) is the parse
// package's concern.
package token
