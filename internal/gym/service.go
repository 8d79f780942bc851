package gym

import (
	"context"
	"errors"

	"github.com/codewithjaspreet/og-backend/internal/metrics"
	"github.com/codewithjaspreet/og-backend/internal/schema"
)

var ErrGymNotFound = errors.New("gym not found")

type Service interface {
	CreateGym(ctx context.Context, g *schema.Gym) (string, error)
	CreateGymPlan(ctx context.Context, p *schema.GymPlan) (string, error)
	FindByName(ctx context.Context, name string) (*Record, error)
	AssignOwner(ctx context.Context, gymID, ownerID string) error
	AddMember(ctx context.Context, rec *Record, memberID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateGym(ctx context.Context, g *schema.Gym) (string, error) {
	id, err := s.repo.CreateGym(ctx, g)
	if err != nil {
		return "", err
	}
	metrics.RecordGymCreated()
	return id, nil
}

func (s *service) CreateGymPlan(ctx context.Context, p *schema.GymPlan) (string, error) {
	id, err := s.repo.CreateGymPlan(ctx, p)
	if err != nil {
		return "", err
	}
	metrics.RecordGymPlanCreated()
	return id, nil
}

func (s *service) FindByName(ctx context.Context, name string) (*Record, error) {
	return s.repo.FindByName(ctx, name)
}

// AssignOwner overwrites the gym's owner reference, last writer wins.
func (s *service) AssignOwner(ctx context.Context, gymID, ownerID string) error {
	return s.repo.SetOwner(ctx, gymID, ownerID)
}

// AddMember appends memberID to the gym's member list only when absent.
// The check runs against the record fetched earlier in the same request, so
// two concurrent additions to one gym can still race; that window is accepted
// in lieu of a transaction.
func (s *service) AddMember(ctx context.Context, rec *Record, memberID string) error {
	if rec.HasMember(memberID) {
		return nil
	}
	return s.repo.SetMembers(ctx, rec.ID, append(rec.MemberIDs, memberID))
}
