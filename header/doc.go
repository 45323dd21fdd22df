// Package header recovers the canonical name from a datfile's header.
//
// Both readers are streaming: they track the current ancestor scope
// while pulling events from the input and return as soon as the name
// field is seen at its expected path, leaving the remainder of the file
// unread. Neither reader validates the document beyond the structure it
// has to cross to get there.
package header
