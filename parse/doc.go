// Package parse turns clrmamepro-format text into a stream of
// structural events.
//
// [Parser.ReadEvent] lazily yields [EventOpen], [EventClose] and
// [EventValue] from an io.Reader. A caller that finds what it needs can
// stop reading and leave the rest of the input untouched.
package parse
