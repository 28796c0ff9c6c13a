// Package registry implements the HTTP client for the package registry.
//
// The client exposes the three operations the resolver needs: listing a
// package's published versions, fetching the recipe of the best version
// matching a constraint, and downloading a release artifact. Version
// listings are cached in memory with a time-based expiry. Requests retry a
// small fixed number of times on transport errors and server failures; a
// missing package is terminal and never retried.
package registry
