// Package store persists users, follow relationships and microposts in a
// relational database (PostgreSQL through pgx, or SQLite).
//
// SQL is built with squirrel using the placeholder format of the configured
// dialect. Driver errors are inspected by an [ErrorClassificator]: integrity
// constraint violations become the sentinel errors of this package, and
// transient failures are retried with exponential backoff.
package store
