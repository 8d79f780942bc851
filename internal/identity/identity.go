// Package identity wraps the identity provider behind a narrow interface so
// the provisioning workflow can be tested against a fake.
package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// Provider creates and deletes login principals. A principal is the
// login-capable account, distinct from the profile document.
type Provider interface {
	CreateUser(ctx context.Context, email, password string) (uid string, err error)
	DeleteUser(ctx context.Context, uid string) error
}

type firebaseProvider struct {
	client *auth.Client
}

func NewFirebaseProvider(client *auth.Client) Provider {
	return &firebaseProvider{client: client}
}

func (p *firebaseProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false).
		Disabled(false)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

func (p *firebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	return p.client.DeleteUser(ctx, uid)
}

// IsAuthError reports whether err came from the identity provider rejecting
// the request, e.g. a duplicate or malformed email.
func IsAuthError(err error) bool {
	return auth.IsEmailAlreadyExists(err) ||
		auth.IsUIDAlreadyExists(err) ||
		auth.IsUserNotFound(err)
}
