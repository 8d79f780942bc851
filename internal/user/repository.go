package user

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/codewithjaspreet/og-backend/internal/schema"
	"github.com/codewithjaspreet/og-backend/internal/store"
)

type firestoreRepository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

type userDoc struct {
	schema.User
	CreatedAt time.Time `firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updated_at,serverTimestamp"`
}

func (r *firestoreRepository) users() *firestore.CollectionRef {
	return r.client.Collection(store.CollectionUsers)
}

func (r *firestoreRepository) Create(ctx context.Context, uid string, u *schema.User) error {
	_, err := r.users().Doc(uid).Set(ctx, userDoc{User: *u})
	return err
}

func (r *firestoreRepository) GetByID(ctx context.Context, uid string) (*Member, error) {
	snap, err := r.users().Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Member{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (r *firestoreRepository) ListByGym(ctx context.Context, gymName, startAfterID string, limit int) ([]Member, error) {
	q := r.users().
		Where("active_gym.gym_name", "==", gymName).
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit)

	if startAfterID != "" {
		snap, err := r.users().Doc(startAfterID).Get(ctx)
		if status.Code(err) == codes.NotFound {
			return nil, ErrCursorNotFound
		}
		if err != nil {
			return nil, err
		}
		if !snap.Exists() {
			return nil, ErrCursorNotFound
		}
		q = q.StartAfter(snap.Ref.ID)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var members []Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		members = append(members, Member{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return members, nil
}

func (r *firestoreRepository) HasMoreAfter(ctx context.Context, gymName, lastID string) (bool, error) {
	iter := r.users().
		Where("active_gym.gym_name", "==", gymName).
		OrderBy(firestore.DocumentID, firestore.Asc).
		StartAfter(lastID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
