// Package main hosts the filmshelf CLI entrypoint and command graph.
//
// The Cobra-based command tree starts the interactive collection session by
// default and surfaces non-interactive maintenance through subcommands: site
// export, user listing, and configuration scaffolding. It centralizes
// configuration resolution and logger setup in a shared command context so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
