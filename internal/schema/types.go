package schema

import "time"

// Closed enum sets. Anything outside these is a validation error.
const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleOwner  = "Owner"
)

type Address struct {
	Line1      string `json:"line1,omitempty" firestore:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" firestore:"line2,omitempty"`
	City       string `json:"city,omitempty" firestore:"city,omitempty"`
	State      string `json:"state,omitempty" firestore:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" firestore:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" firestore:"country,omitempty"`
}

type ContactDetails struct {
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
}

type Measurements struct {
	Height    float64 `json:"height" firestore:"height"`
	Weight    float64 `json:"weight" firestore:"weight"`
	Waist     float64 `json:"waist" firestore:"waist"`
	Chest     float64 `json:"chest" firestore:"chest"`
	Shoulders float64 `json:"shoulders" firestore:"shoulders"`
	Legs      float64 `json:"legs" firestore:"legs"`
	Forearm   float64 `json:"forearm" firestore:"forearm"`
	Biceps    float64 `json:"biceps" firestore:"biceps"`
}

type Announcement struct {
	Title string `json:"title" firestore:"title"`
	Body  string `json:"body" firestore:"body"`
	Type  string `json:"type,omitempty" firestore:"type,omitempty"`
}

type SubscriptionPlan struct {
	PlanName        string  `json:"plan_name" firestore:"plan_name"`
	PlanCharges     float64 `json:"plan_charges" firestore:"plan_charges"`
	PlanDescription string  `json:"plan_description" firestore:"plan_description"`
	IsActive        bool    `json:"is_active" firestore:"is_active"`
}

type DeviceInfo struct {
	ID         string `json:"id" firestore:"id"`
	UserID     string `json:"user_id" firestore:"user_id"`
	Platform   string `json:"platform" firestore:"platform"`
	Token      string `json:"token" firestore:"token"`
	AppVersion string `json:"app_version" firestore:"app_version"`
}

type Gym struct {
	Name               string          `json:"gym_name" firestore:"gym_name"`
	Address            *Address        `json:"address,omitempty" firestore:"address,omitempty"`
	Plans              []any           `json:"gym_plans" firestore:"gym_plans"`
	Members            []any           `json:"gym_members" firestore:"gym_members"`
	Owner              string          `json:"owner,omitempty" firestore:"owner,omitempty"`
	ContactDetails     *ContactDetails `json:"contact_details,omitempty" firestore:"contact_details,omitempty"`
	Logo               string          `json:"gym_logo" firestore:"gym_logo"`
	IsActive           bool            `json:"is_active" firestore:"is_active"`
	Feedbacks          []any           `json:"feedbacks" firestore:"feedbacks"`
	DOB                *time.Time      `json:"gym_dob,omitempty" firestore:"gym_dob,omitempty"`
	SubscriptionStatus bool            `json:"subscription_status" firestore:"subscription_status"`
	SubscriptionPlan   string          `json:"subscription_plan,omitempty" firestore:"subscription_plan,omitempty"`
	Announcements      []any           `json:"announcements" firestore:"announcements"`
	TotalRevenue       float64         `json:"total_revenue" firestore:"total_revenue"`
	RevenueThisMonth   float64         `json:"revenue_this_month" firestore:"revenue_this_month"`
}

type GymPlan struct {
	GymID           string  `json:"gym_id" firestore:"gym_id"`
	GymName         string  `json:"gym_name" firestore:"gym_name"`
	PlanName        string  `json:"plan_name" firestore:"plan_name"`
	IsActive        bool    `json:"is_active" firestore:"is_active"`
	PlanCharges     float64 `json:"plan_charges" firestore:"plan_charges"`
	PlanDescription string  `json:"plan_description" firestore:"plan_description"`
	PlanDuration    float64 `json:"plan_duration" firestore:"plan_duration"`
}

type User struct {
	// UserID is assigned by the provisioning workflow once the identity
	// principal exists; it is never accepted from the client.
	UserID string `json:"user_id,omitempty" firestore:"user_id,omitempty"`

	Name               string            `json:"name" firestore:"name"`
	Role               string            `json:"role,omitempty" firestore:"role,omitempty"`
	Gender             string            `json:"gender,omitempty" firestore:"gender,omitempty"`
	ContactDetails     *ContactDetails   `json:"contact_details,omitempty" firestore:"contact_details,omitempty"`
	Address            *Address          `json:"address,omitempty" firestore:"address,omitempty"`
	Measurements       *Measurements     `json:"measurements,omitempty" firestore:"measurements,omitempty"`
	DateOfBirth        *time.Time        `json:"date_of_birth,omitempty" firestore:"date_of_birth,omitempty"`
	FeesDueDate        *time.Time        `json:"fees_due_date,omitempty" firestore:"fees_due_date,omitempty"`
	IsActive           bool              `json:"is_active" firestore:"is_active"`
	IsPresentToday     bool              `json:"is_present_today" firestore:"is_present_today"`
	IsFeesPaid         bool              `json:"is_fees_paid" firestore:"is_fees_paid"`
	SubscriptionStatus bool              `json:"subscription_status" firestore:"subscription_status"`
	ProfilePicture     string            `json:"profile_picture" firestore:"profile_picture"`
	CheckInTimeToday   *time.Time        `json:"check_in_time_today,omitempty" firestore:"check_in_time_today,omitempty"`
	CheckOutTimeToday  *time.Time        `json:"check_out_time_today,omitempty" firestore:"check_out_time_today,omitempty"`
	ActiveGym          *Gym              `json:"active_gym,omitempty" firestore:"active_gym,omitempty"`
	ActiveGymPlan      *GymPlan          `json:"active_gym_plan,omitempty" firestore:"active_gym_plan,omitempty"`
	ActiveSubPlan      *SubscriptionPlan `json:"active_subscription_plan,omitempty" firestore:"active_subscription_plan,omitempty"`
	Announcements      []Announcement    `json:"announcements" firestore:"announcements"`
	DeviceInfo         *DeviceInfo       `json:"device_info,omitempty" firestore:"device_info,omitempty"`
}

// ActiveGymName returns the trimmed gym name the user wants to attach to, or
// "" when no gym is named.
func (u *User) ActiveGymName() string {
	if u.ActiveGym == nil {
		return ""
	}
	return u.ActiveGym.Name
}

// Email returns the trimmed contact email, or "" when absent.
func (u *User) Email() string {
	if u.ContactDetails == nil {
		return ""
	}
	return u.ContactDetails.Email
}
