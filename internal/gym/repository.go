package gym

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/codewithjaspreet/og-backend/internal/schema"
	"github.com/codewithjaspreet/og-backend/internal/store"
)

type firestoreRepository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

// gymDoc adds the server-assigned timestamps to a validated gym document.
type gymDoc struct {
	schema.Gym
	CreatedAt time.Time `firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updated_at,serverTimestamp"`
}

type gymPlanDoc struct {
	schema.GymPlan
	CreatedAt time.Time `firestore:"created_at,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updated_at,serverTimestamp"`
}

func (r *firestoreRepository) CreateGym(ctx context.Context, g *schema.Gym) (string, error) {
	ref, _, err := r.client.Collection(store.CollectionGyms).Add(ctx, gymDoc{Gym: *g})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *firestoreRepository) CreateGymPlan(ctx context.Context, p *schema.GymPlan) (string, error) {
	ref, _, err := r.client.Collection(store.CollectionGymPlans).Add(ctx, gymPlanDoc{GymPlan: *p})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// FindByName runs an exact-match, limit-1 query on the trimmed gym name.
// A blank name never reaches Firestore; it resolves to not-found directly.
func (r *firestoreRepository) FindByName(ctx context.Context, name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGymNotFound
	}

	iter := r.client.Collection(store.CollectionGyms).
		Where("gym_name", "==", name).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, err
	}

	data := doc.Data()
	rec := &Record{ID: doc.Ref.ID, Name: name}
	if owner, ok := data["owner_id"].(string); ok {
		rec.OwnerID = owner
	}
	if raw, ok := data["member_list"].([]any); ok {
		for _, v := range raw {
			if id, ok := v.(string); ok {
				rec.MemberIDs = append(rec.MemberIDs, id)
			}
		}
	}
	return rec, nil
}

func (r *firestoreRepository) SetOwner(ctx context.Context, gymID, ownerID string) error {
	_, err := r.client.Collection(store.CollectionGyms).Doc(gymID).Update(ctx, []firestore.Update{
		{Path: "owner_id", Value: ownerID},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	return err
}

func (r *firestoreRepository) SetMembers(ctx context.Context, gymID string, memberIDs []string) error {
	_, err := r.client.Collection(store.CollectionGyms).Doc(gymID).Update(ctx, []firestore.Update{
		{Path: "member_list", Value: memberIDs},
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	})
	return err
}
