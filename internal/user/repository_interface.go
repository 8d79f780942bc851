package user

import (
	"context"

	"github.com/codewithjaspreet/og-backend/internal/schema"
)

type Repository interface {
	// Create writes the user document keyed by the identity principal id.
	Create(ctx context.Context, uid string, u *schema.User) error
	GetByID(ctx context.Context, uid string) (*Member, error)
	// ListByGym returns up to limit members of the named gym, continuing
	// strictly after startAfterID when it is non-empty. A cursor that no
	// longer resolves yields ErrCursorNotFound.
	ListByGym(ctx context.Context, gymName, startAfterID string, limit int) ([]Member, error)
	// HasMoreAfter reports whether any member of the gym exists strictly
	// after the given document id.
	HasMoreAfter(ctx context.Context, gymName, lastID string) (bool, error)
}
