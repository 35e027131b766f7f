// Package library owns collection persistence: users and the movies they
// keep, backed by SQLite.
//
// Every operation runs as a single implicit transaction and surfaces engine
// failures as wrapped ErrStore values, so callers never handle raw driver
// errors. Uniqueness (one username globally, one title per user) is enforced
// at the schema and mapped to named sentinel errors. Schema initialization is
// destructive by default: tables are dropped and recreated on open, which
// reproduces the app's historical empty-on-start behavior and can be disabled
// through configuration.
package library
