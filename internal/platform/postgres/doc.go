// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, using database/sql over the pgx
// stdlib driver. Uniqueness and referential integrity violations reported
// by PostgreSQL are translated into the store package's sentinel errors.
package postgres
