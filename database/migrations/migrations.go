// Package migrations holds this project's schema migrations.
// Blank-import it so the init() registrations run.
package migrations
