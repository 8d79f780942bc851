package gym

import (
	"context"

	"github.com/codewithjaspreet/og-backend/internal/schema"
)

type Repository interface {
	CreateGym(ctx context.Context, g *schema.Gym) (string, error)
	CreateGymPlan(ctx context.Context, p *schema.GymPlan) (string, error)
	FindByName(ctx context.Context, name string) (*Record, error)
	SetOwner(ctx context.Context, gymID, ownerID string) error
	SetMembers(ctx context.Context, gymID string, memberIDs []string) error
}
