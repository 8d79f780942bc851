package schema

import (
	"fmt"

	"github.com/codewithjaspreet/og-backend/internal/apperr"
)

// ParseUser validates a user document for the add-user endpoint. The embedded
// active_gym and active_gym_plan objects are validated with relaxed variants
// of their schemas: only the name is required, since a denormalized embed is
// not a full create payload.
func ParseUser(raw map[string]any) (*User, *apperr.Error) {
	var issues []Issue
	o := newObject(raw, "", &issues)
	u := &User{}

	u.Name = o.requiredString("name", "name is required")
	u.Role = o.optionalEnum("role", RoleMember, RoleAdmin, RoleStaff, RoleOwner)
	u.Gender = o.optionalEnum("gender", "Male", "Female", "Other")

	if m, ok := o.nestedObject("contact_details"); ok {
		u.ContactDetails = parseContact(m, "contact_details", &issues)
	}
	if m, ok := o.nestedObject("address"); ok {
		u.Address = parseAddress(m, "address", &issues)
	}
	if m, ok := o.nestedObject("measurements"); ok {
		u.Measurements = parseMeasurements(m, "measurements", &issues)
	}

	u.DateOfBirth = o.optionalDate("date_of_birth")
	u.FeesDueDate = o.optionalDate("fees_due_date")
	u.CheckInTimeToday = o.optionalDate("check_in_time_today")
	u.CheckOutTimeToday = o.optionalDate("check_out_time_today")

	u.IsActive = o.optionalBool("is_active", true)
	u.IsPresentToday = o.optionalBool("is_present_today", true)
	u.IsFeesPaid = o.optionalBool("is_fees_paid", true)
	u.SubscriptionStatus = o.optionalBool("subscription_status", true)
	u.ProfilePicture = o.optionalString("profile_picture", "")

	if m, ok := o.nestedObject("active_gym"); ok {
		u.ActiveGym = parseGym(m, "active_gym", &issues, true)
	}
	if m, ok := o.nestedObject("active_gym_plan"); ok {
		u.ActiveGymPlan = parseGymPlan(m, "active_gym_plan", &issues, true)
	}
	if m, ok := o.nestedObject("active_subscription_plan"); ok {
		u.ActiveSubPlan = parseSubscriptionPlan(m, "active_subscription_plan", &issues)
	}

	u.Announcements = []Announcement{}
	for i, item := range o.anyList("announcements") {
		path := fmt.Sprintf("announcements.%d", i)
		m, ok := item.(map[string]any)
		if !ok {
			issues = append(issues, Issue{Path: path, Message: "announcement must be an object"})
			continue
		}
		u.Announcements = append(u.Announcements, parseAnnouncement(m, path, &issues))
	}

	if m, ok := o.nestedObject("device_info"); ok {
		u.DeviceInfo = parseDeviceInfo(m, "device_info", &issues)
	}

	o.unknownFields("user document")

	if len(issues) > 0 {
		return nil, apperr.Validation(issues)
	}
	return u, nil
}
