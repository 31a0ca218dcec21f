package clients

import "context"

// Repository describes the operations over the client record store.
type Repository interface {
	// List returns all records in insertion order. A store that does not
	// exist yet reads as empty.
	List(ctx context.Context) ([]Record, error)

	// Append validates and adds one record. A record with an empty Date is
	// stamped with the current time.
	Append(ctx context.Context, rec Record) error

	// Update rewrites the store replacing the first record matching key.
	// The matched record's creation date is preserved. Returns
	// common.ErrorNotFound when no record matches.
	Update(ctx context.Context, key Key, updated Record) error

	// Delete rewrites the store removing every record matching (name, email).
	// Deleting from a missing store, or a key with no matches, is a no-op.
	Delete(ctx context.Context, name, email string) error
}
