package user

import (
	"strings"
	"time"
)

// formatUser builds the reduced listing view of a stored user document.
// The flat email/phone/active_plan fields come from legacy documents and are
// passed through as stored.
func formatUser(m *Member) *MemberSummary {
	d := m.Data
	return &MemberSummary{
		UID:         m.ID,
		Name:        d["name"],
		CreatedAt:   formatDate(d["created_at"]),
		IsActive:    d["is_active"],
		FeesDueDate: formatDate(d["fees_due_date"]),
		IsFeesPaid:  d["is_fees_paid"],
		DateOfBirth: formatDate(d["date_of_birth"]),
		Email:       d["email"],
		Phone:       d["phone"],
		ActivePlan:  d["active_plan"],
	}
}

// formatUserDetailing builds the full profile view. Contact fields prefer the
// nested contact_details object and fall back to the legacy flat fields;
// list fields default to empty arrays.
func formatUserDetailing(m *Member) *MemberDetail {
	d := m.Data
	contact, _ := d["contact_details"].(map[string]any)
	activeGym, _ := d["active_gym"].(map[string]any)

	return &MemberDetail{
		UID:                    m.ID,
		Name:                   d["name"],
		Role:                   d["role"],
		Gender:                 d["gender"],
		IsActive:               d["is_active"],
		IsPresentToday:         d["is_present_today"],
		IsFeesPaid:             d["is_fees_paid"],
		SubscriptionStatus:     d["subscription_status"],
		ActiveGym:              d["active_gym"],
		ActiveGymPlan:          d["active_gym_plan"],
		ActiveSubscriptionPlan: d["active_subscription_plan"],
		SubscriptionPlan:       d["subscription_plan"],
		ActivePlan:             d["active_plan"],
		CreatedAt:              formatDate(d["created_at"]),
		UpdatedAt:              formatDate(d["updated_at"]),
		DateOfBirth:            formatDate(d["date_of_birth"]),
		FeesDueDate:            formatDate(d["fees_due_date"]),
		CheckInTimeToday:       formatDate(d["check_in_time_today"]),
		CheckOutTimeToday:      formatDate(d["check_out_time_today"]),
		Email:                  fallback(contact, "email", d["email"]),
		Phone:                  fallback(contact, "phone", d["phone"]),
		Whatsapp:               fallback(contact, "whatsapp", nil),
		ProfilePicture:         d["profile_picture"],
		Address:                d["address"],
		Measurements:           d["measurements"],
		Announcements:          listOrEmpty(d["announcements"]),
		Feedbacks:              listOrEmpty(d["feedbacks"]),
		GymLogo:                mapValue(activeGym, "gym_logo"),
		UserID:                 d["user_id"],
	}
}

// formatDate renders a stored date as YYYY-MM-DD. The stored representation
// may be a Firestore timestamp or a plain string; a string that does not look
// like a date is returned as-is, anything else renders null.
func formatDate(v any) *string {
	switch d := v.(type) {
	case time.Time:
		s := d.Format("2006-01-02")
		return &s
	case string:
		trimmed := strings.TrimSpace(d)
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, trimmed); err == nil {
				s := t.Format("2006-01-02")
				return &s
			}
		}
		return &d
	default:
		return nil
	}
}

func fallback(m map[string]any, key string, legacy any) any {
	if m != nil {
		if v, ok := m[key]; ok && v != nil && v != "" {
			return v
		}
	}
	return legacy
}

func mapValue(m map[string]any, key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

func listOrEmpty(v any) []any {
	if l, ok := v.([]any); ok && l != nil {
		return l
	}
	return []any{}
}
