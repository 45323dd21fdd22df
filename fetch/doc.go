// Package fetch provides the HTTP session the mirror pipelines share:
// a base URL, a default timeout, and retry with backoff on transient
// failures.
package fetch
