package user

// Member is a stored user document. Data holds the raw document so the
// formatters can honor legacy flat fields that predate the nested schema.
type Member struct {
	ID   string
	Data map[string]any
}

// MemberSummary is the reduced listing view. Untyped fields pass the stored
// value through unchanged (or null when absent); date fields are rendered as
// YYYY-MM-DD strings.
type MemberSummary struct {
	UID         string  `json:"uid"`
	Name        any     `json:"name"`
	CreatedAt   *string `json:"created_at"`
	IsActive    any     `json:"is_active"`
	FeesDueDate *string `json:"fees_due_date"`
	IsFeesPaid  any     `json:"is_fees_paid"`
	DateOfBirth *string `json:"date_of_birth"`
	Email       any     `json:"email"`
	Phone       any     `json:"phone"`
	ActivePlan  any     `json:"active_plan"`
}

// MemberDetail is the full denormalized profile served by the detail
// endpoint, embedded gym and plan objects included.
type MemberDetail struct {
	UID                    string  `json:"uid"`
	Name                   any     `json:"name"`
	Role                   any     `json:"role"`
	Gender                 any     `json:"gender"`
	IsActive               any     `json:"is_active"`
	IsPresentToday         any     `json:"is_present_today"`
	IsFeesPaid             any     `json:"is_fees_paid"`
	SubscriptionStatus     any     `json:"subscription_status"`
	ActiveGym              any     `json:"active_gym"`
	ActiveGymPlan          any     `json:"active_gym_plan"`
	ActiveSubscriptionPlan any     `json:"active_subscription_plan"`
	SubscriptionPlan       any     `json:"subscription_plan"`
	ActivePlan             any     `json:"active_plan"`
	CreatedAt              *string `json:"created_at"`
	UpdatedAt              *string `json:"updated_at"`
	DateOfBirth            *string `json:"date_of_birth"`
	FeesDueDate            *string `json:"fees_due_date"`
	CheckInTimeToday       *string `json:"check_in_time_today"`
	CheckOutTimeToday      *string `json:"check_out_time_today"`
	Email                  any     `json:"email"`
	Phone                  any     `json:"phone"`
	Whatsapp               any     `json:"whatsapp"`
	ProfilePicture         any     `json:"profile_picture"`
	Address                any     `json:"address"`
	Measurements           any     `json:"measurements"`
	Announcements          []any   `json:"announcements"`
	Feedbacks              []any   `json:"feedbacks"`
	GymLogo                any     `json:"gym_logo"`
	UserID                 any     `json:"user_id"`
}

// ProvisionResult is returned once per created user; the plaintext password
// is never retrievable again.
type ProvisionResult struct {
	UserID            string
	GeneratedPassword string
}

type ListQuery struct {
	GymName        string
	LastDocID      string
	SortByBirthday bool
	SortByPayments bool
}

type MemberPage struct {
	Members   []*MemberSummary
	LastDocID string
	HasMore   bool
}
