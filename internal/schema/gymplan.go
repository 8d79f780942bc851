package schema

import "github.com/codewithjaspreet/og-backend/internal/apperr"

// ParseGymPlan validates a gym plan document for the add-gym-plans endpoint.
func ParseGymPlan(raw map[string]any) (*GymPlan, *apperr.Error) {
	var issues []Issue
	p := parseGymPlan(raw, "", &issues, false)
	if len(issues) > 0 {
		return nil, apperr.Validation(issues)
	}
	return p, nil
}

func parseGymPlan(raw map[string]any, path string, issues *[]Issue, embed bool) *GymPlan {
	o := newObject(raw, path, issues)
	p := &GymPlan{}

	if embed {
		p.GymID = o.optionalString("gym_id", "")
		p.GymName = o.optionalString("gym_name", "")
	} else {
		p.GymID = o.requiredString("gym_id", "gym_id is required")
		p.GymName = o.requiredString("gym_name", "gym_name is required")
	}
	p.PlanName = o.requiredString("plan_name", "plan_name is required")
	p.IsActive = o.optionalBool("is_active", true)
	p.PlanCharges = o.nonNegativeNumber("plan_charges", 0)
	p.PlanDescription = o.optionalString("plan_description", "")
	p.PlanDuration = o.nonNegativeNumber("plan_duration", 0)

	if embed {
		o.take("created_at")
		o.take("updated_at")
	}

	o.unknownFields("gym plan document")
	return p
}
