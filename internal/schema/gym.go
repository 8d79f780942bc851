package schema

import "github.com/codewithjaspreet/og-backend/internal/apperr"

// ParseGym validates a gym document for the add-gym endpoint. The owner field
// is required here; the denormalized embed on a user document goes through
// parseGymEmbed instead.
func ParseGym(raw map[string]any) (*Gym, *apperr.Error) {
	var issues []Issue
	g := parseGym(raw, "", &issues, false)
	if len(issues) > 0 {
		return nil, apperr.Validation(issues)
	}
	return g, nil
}

func parseGym(raw map[string]any, path string, issues *[]Issue, embed bool) *Gym {
	o := newObject(raw, path, issues)
	g := &Gym{}

	g.Name = o.requiredString("gym_name", "gym_name is required")
	if embed {
		g.Owner = o.optionalString("owner", "")
	} else {
		g.Owner = o.requiredString("owner", "owner is required")
	}

	if m, ok := o.nestedObject("address"); ok {
		g.Address = parseAddress(m, o.fieldPath("address"), issues)
	}
	if m, ok := o.nestedObject("contact_details"); ok {
		g.ContactDetails = parseContact(m, o.fieldPath("contact_details"), issues)
	}

	g.Plans = o.anyList("gym_plans")
	g.Members = o.anyList("gym_members")
	g.Feedbacks = o.anyList("feedbacks")
	g.Announcements = o.anyList("announcements")

	g.Logo = o.optionalString("gym_logo", "")
	g.IsActive = o.optionalBool("is_active", true)
	g.DOB = o.optionalDate("gym_dob")
	g.SubscriptionStatus = o.optionalBool("subscription_status", true)
	g.SubscriptionPlan = o.optionalString("subscription_plan", "")
	g.TotalRevenue = o.nonNegativeNumber("total_revenue", 0)
	g.RevenueThisMonth = o.nonNegativeNumber("revenue_this_month", 0)

	if embed {
		// Fields written back by the provisioning workflow may round-trip
		// on a denormalized embed.
		o.take("owner_id")
		o.take("member_list")
		o.take("created_at")
		o.take("updated_at")
	}

	o.unknownFields("gym document")
	return g
}
