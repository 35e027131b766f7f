// Package omdb provides the minimal OMDb API client used when adding movies
// to a collection.
//
// It issues a single by-title lookup and normalizes the response into a fixed
// record shape: the year is parsed only when purely numeric, the rating
// defaults to zero when absent, and the "N/A" poster sentinel maps to an empty
// URL. A missing movie and an unreachable API both surface as not-found; the
// session cannot tell them apart. Options allow tests to supply custom HTTP
// clients or timeouts without modifying production code.
package omdb
