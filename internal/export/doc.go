// Package export renders static, non-interactive collection pages: one HTML
// file per user, movies sorted descending by rating, stamped with the
// generation time.
package export
