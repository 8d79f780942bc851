package schema

import (
	"fmt"
	"strings"
)

// Flat value objects shared by the gym and user documents. Each parser is
// strict and records issues under the caller-supplied path prefix.

func parseAddress(raw map[string]any, path string, issues *[]Issue) *Address {
	o := newObject(raw, path, issues)
	a := &Address{}

	a.Line1 = o.boundedString("line1", 200, true)
	a.Line2 = o.boundedString("line2", 200, false)
	a.City = o.boundedString("city", 120, false)
	a.State = o.boundedString("state", 120, false)
	a.PostalCode = o.boundedString("postal_code", 20, false)
	a.Country = o.boundedString("country", 120, false)

	o.unknownFields("address")
	return a
}

// boundedString handles the optional, length-bounded address fields.
// nonEmpty rejects a present-but-blank value.
func (o *object) boundedString(name string, max int, nonEmpty bool) string {
	v, ok := o.take(name)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.issue(o.fieldPath(name), name+" must be a string")
		return ""
	}
	s = strings.TrimSpace(s)
	if nonEmpty && s == "" {
		o.issue(o.fieldPath(name), o.fieldPath(name)+" cannot be empty")
	}
	if len(s) > max {
		o.issue(o.fieldPath(name), fmt.Sprintf("%s must be at most %d characters", name, max))
	}
	return s
}

func parseContact(raw map[string]any, path string, issues *[]Issue) *ContactDetails {
	o := newObject(raw, path, issues)
	c := &ContactDetails{}

	c.Email = o.optionalString("email", "")
	if c.Email != "" {
		if err := validate.Var(c.Email, "email"); err != nil {
			o.issue(o.fieldPath("email"), "Email must be a valid email")
		}
	}

	c.Phone = o.optionalString("phone", "")
	if c.Phone != "" && !phoneRe.MatchString(c.Phone) {
		o.issue(o.fieldPath("phone"), "Phone must be a valid phone")
	}

	c.Whatsapp = o.optionalString("whatsapp", "")
	if c.Whatsapp != "" && !phoneRe.MatchString(c.Whatsapp) {
		o.issue(o.fieldPath("whatsapp"), "Whatsapp must be a valid phone")
	}

	o.unknownFields("contact_details")
	return c
}

func parseMeasurements(raw map[string]any, path string, issues *[]Issue) *Measurements {
	o := newObject(raw, path, issues)
	m := &Measurements{}

	m.Height = o.nonNegativeNumber("height", 0)
	m.Weight = o.nonNegativeNumber("weight", 0)
	m.Waist = o.nonNegativeNumber("waist", 0)
	m.Chest = o.nonNegativeNumber("chest", 0)
	m.Shoulders = o.nonNegativeNumber("shoulders", 0)
	m.Legs = o.nonNegativeNumber("legs", 0)
	m.Forearm = o.nonNegativeNumber("forearm", 0)
	m.Biceps = o.nonNegativeNumber("biceps", 0)

	o.unknownFields("measurements")
	return m
}

func parseAnnouncement(raw map[string]any, path string, issues *[]Issue) Announcement {
	o := newObject(raw, path, issues)
	a := Announcement{}

	a.Title = o.requiredString("title", "title is required")
	a.Body = o.requiredString("body", "body is required")
	a.Type = o.optionalEnum("type", "Reminder", "Notification", "Announcement", "General")

	o.unknownFields("announcement")
	return a
}

func parseSubscriptionPlan(raw map[string]any, path string, issues *[]Issue) *SubscriptionPlan {
	o := newObject(raw, path, issues)
	p := &SubscriptionPlan{}

	p.PlanName = o.requiredString("plan_name", "plan_name is required")
	p.PlanCharges = o.requiredNumberMin("plan_charges", 1, "plan_charges is required")
	p.PlanDescription = o.requiredString("plan_description", "plan_description is required")
	p.IsActive = o.optionalBool("is_active", true)

	o.unknownFields("subscription plan")
	return p
}

func parseDeviceInfo(raw map[string]any, path string, issues *[]Issue) *DeviceInfo {
	o := newObject(raw, path, issues)
	d := &DeviceInfo{}

	d.ID = o.requiredString("id", "id is required")
	d.UserID = o.requiredString("user_id", "user_id is required")
	d.Platform = o.requiredString("platform", "platform is required")
	d.Token = o.requiredString("token", "token is required")
	d.AppVersion = o.requiredString("app_version", "app_version is required")

	o.unknownFields("device_info")
	return d
}
