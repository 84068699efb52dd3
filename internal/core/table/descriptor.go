package table

import "context"

// Descriptor declares everything entity-specific about a managed collection:
// how to fetch it, which fields the filter searches, and how rows are keyed.
// The Load closure owns any reference-collection joins.
type Descriptor[T any] struct {
	// Entity is the collection name used in notifications, errors and metrics.
	Entity string

	// PageSize is the fixed rows-per-page; DefaultPageSize when zero.
	PageSize int

	// ID returns the row's stable identifier as a string. For entities the
	// backend deletes by natural key (customer, employer email) it returns
	// that key instead of the numeric id.
	ID func(T) string

	// FilterFields are the textual fields the substring filter searches.
	FilterFields []func(T) string

	// Load fetches the full collection, joins included, on behalf of the
	// session identified by token. Each call replaces the previous view.
	Load func(ctx context.Context, token string) ([]T, error)
}

// RoleVerifier checks that a token belongs to an administrator. Any error is
// treated by the controller exactly like a negative answer.
type RoleVerifier interface {
	VerifyAdmin(ctx context.Context, token string) (bool, error)
}
