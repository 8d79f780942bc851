package user

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/codewithjaspreet/og-backend/internal/apperr"
	"github.com/codewithjaspreet/og-backend/internal/gym"
	"github.com/codewithjaspreet/og-backend/internal/identity"
	"github.com/codewithjaspreet/og-backend/internal/logger"
	"github.com/codewithjaspreet/og-backend/internal/metrics"
	"github.com/codewithjaspreet/og-backend/internal/schema"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCursorNotFound = errors.New("cursor not found")
)

const (
	pageSize       = 10
	passwordLength = 12
)

// Mailer queues outbound mail. Enqueue failures never fail provisioning.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name, gymName string) error
}

type Service interface {
	// Provision creates the login principal, assigns the gym role, and
	// stores the profile document. The generated password is returned once
	// and never stored.
	Provision(ctx context.Context, u *schema.User) (*ProvisionResult, error)
	GetMember(ctx context.Context, uid string) (*MemberSummary, error)
	GetMemberDetail(ctx context.Context, uid string) (*MemberDetail, error)
	ListMembers(ctx context.Context, q ListQuery) (*MemberPage, error)
}

type service struct {
	repo Repository
	gyms gym.Service
	ids  identity.Provider
	mail Mailer
}

func NewService(repo Repository, gyms gym.Service, ids identity.Provider, mail Mailer) Service {
	return &service{repo: repo, gyms: gyms, ids: ids, mail: mail}
}

func (s *service) Provision(ctx context.Context, u *schema.User) (*ProvisionResult, error) {
	email := u.Email()
	if email == "" {
		return nil, apperr.New(apperr.KindBadRequest, "contact_details.email is required")
	}

	password := identity.GeneratePassword(passwordLength)

	uid, err := s.ids.CreateUser(ctx, email, password)
	if err != nil {
		if identity.IsAuthError(err) {
			return nil, apperr.Wrap(apperr.KindAuthentication, err.Error(), err)
		}
		return nil, apperr.Internal("create user", err)
	}

	if err := s.assignRole(ctx, u, uid); err != nil {
		s.compensate(ctx, uid)
		return nil, err
	}

	u.UserID = uid
	if err := s.repo.Create(ctx, uid, u); err != nil {
		s.compensate(ctx, uid)
		return nil, apperr.Internal("create user", err)
	}

	metrics.RecordUserProvisioned(u.Role)

	if s.mail != nil {
		if err := s.mail.SendWelcome(ctx, email, u.Name, u.ActiveGymName()); err != nil {
			logger.WithError(err).Warn("failed to queue welcome email")
		}
	}

	return &ProvisionResult{UserID: uid, GeneratedPassword: password}, nil
}

// assignRole attaches the new principal to its gym. Owners overwrite the
// owner reference; members are appended to the member list.
func (s *service) assignRole(ctx context.Context, u *schema.User, uid string) error {
	if u.Role != schema.RoleOwner && u.Role != schema.RoleMember {
		return nil
	}

	gymName := u.ActiveGymName()
	if gymName == "" {
		return apperr.New(apperr.KindBadRequest,
			fmt.Sprintf("active_gym.gym_name is required when role is '%s'", u.Role))
	}

	rec, err := s.gyms.FindByName(ctx, gymName)
	if err != nil {
		if errors.Is(err, gym.ErrGymNotFound) {
			return apperr.New(apperr.KindNotFound,
				fmt.Sprintf("No gym found with gym_name='%s' to assign %s", gymName, u.Role))
		}
		return apperr.Internal("look up gym", err)
	}

	switch u.Role {
	case schema.RoleOwner:
		err = s.gyms.AssignOwner(ctx, rec.ID, uid)
	case schema.RoleMember:
		err = s.gyms.AddMember(ctx, rec, uid)
	}
	if err != nil {
		return apperr.Internal("assign gym role", err)
	}
	return nil
}

// compensate deletes the principal created earlier in the same request so a
// failed provisioning leaves no login behind. A failed compensation is logged
// and surfaced in metrics only; the original error still reaches the caller.
func (s *service) compensate(ctx context.Context, uid string) {
	if err := s.ids.DeleteUser(ctx, uid); err != nil {
		logger.WithError(err).Error("failed to delete orphaned principal", "uid", uid)
		metrics.RecordCompensation("failed")
		return
	}
	metrics.RecordCompensation("succeeded")
}

func (s *service) GetMember(ctx context.Context, uid string) (*MemberSummary, error) {
	m, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Internal("fetch user", err)
	}
	return formatUser(m), nil
}

func (s *service) GetMemberDetail(ctx context.Context, uid string) (*MemberDetail, error) {
	m, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Internal("fetch user", err)
	}
	return formatUserDetailing(m), nil
}

func (s *service) ListMembers(ctx context.Context, q ListQuery) (*MemberPage, error) {
	members, err := s.repo.ListByGym(ctx, q.GymName, q.LastDocID, pageSize)
	if err != nil {
		if errors.Is(err, ErrCursorNotFound) {
			return &MemberPage{Members: []*MemberSummary{}}, nil
		}
		return nil, apperr.Internal("list members", err)
	}
	if len(members) == 0 {
		return &MemberPage{Members: []*MemberSummary{}}, nil
	}

	summaries := make([]*MemberSummary, 0, len(members))
	for i := range members {
		summaries = append(summaries, formatUser(&members[i]))
	}

	// Sorting is page-local: only the ten fetched documents are reordered,
	// never the whole collection.
	if q.SortByPayments {
		sortByDate(summaries, func(m *MemberSummary) *string { return m.FeesDueDate })
	} else if q.SortByBirthday {
		sortByDate(summaries, func(m *MemberSummary) *string { return m.DateOfBirth })
	}

	lastID := members[len(members)-1].ID
	hasMore, err := s.repo.HasMoreAfter(ctx, q.GymName, lastID)
	if err != nil {
		return nil, apperr.Internal("list members", err)
	}

	return &MemberPage{Members: summaries, LastDocID: lastID, HasMore: hasMore}, nil
}

// sortByDate orders ascending by a YYYY-MM-DD rendered date; lexicographic
// order on that format is chronological order. Entries without the date keep
// their relative order at the end.
func sortByDate(members []*MemberSummary, key func(*MemberSummary) *string) {
	sort.SliceStable(members, func(i, j int) bool {
		a, b := key(members[i]), key(members[j])
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
}
