// Package redump mirrors datfiles from redump.org.
//
// The downloads page lists one table row per system with optional
// links to a datfile (zipped XML) and a BIOS datfile (zipped
// clrmamepro). Each link is downloaded, unpacked if zipped, renamed to
// its header name and stored.
package redump
