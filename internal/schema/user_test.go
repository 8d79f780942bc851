package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserDoc() map[string]any {
	return map[string]any{
		"name": "Rohan Mehta",
		"role": "Member",
		"contact_details": map[string]any{
			"email": "rohan@example.com",
			"phone": "+91 98765 43210",
		},
		"active_gym": map[string]any{
			"gym_name": "Iron Temple",
		},
		"date_of_birth": "1995-06-10",
	}
}

func TestParseUser_Valid(t *testing.T) {
	u, err := ParseUser(validUserDoc())
	require.Nil(t, err)

	assert.Equal(t, "Rohan Mehta", u.Name)
	assert.Equal(t, RoleMember, u.Role)
	assert.Equal(t, "rohan@example.com", u.Email())
	assert.Equal(t, "Iron Temple", u.ActiveGymName())
	assert.True(t, u.IsActive)
	assert.True(t, u.IsPresentToday)
	assert.True(t, u.IsFeesPaid)
	assert.True(t, u.SubscriptionStatus)
	assert.Equal(t, []Announcement{}, u.Announcements)
	require.NotNil(t, u.DateOfBirth)
	assert.Equal(t, "1995-06-10", u.DateOfBirth.Format("2006-01-02"))
	assert.Empty(t, u.UserID)
}

func TestParseUser_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(doc map[string]any)
		wantPaths []string
	}{
		{
			name:      "missing name",
			mutate:    func(doc map[string]any) { delete(doc, "name") },
			wantPaths: []string{"name"},
		},
		{
			name:      "unknown top-level field",
			mutate:    func(doc map[string]any) { doc["nickname"] = "Ro" },
			wantPaths: []string{"nickname"},
		},
		{
			name:      "bad role",
			mutate:    func(doc map[string]any) { doc["role"] = "Janitor" },
			wantPaths: []string{"role"},
		},
		{
			name:      "bad gender",
			mutate:    func(doc map[string]any) { doc["gender"] = "Unknown" },
			wantPaths: []string{"gender"},
		},
		{
			name: "embedded gym without name",
			mutate: func(doc map[string]any) {
				doc["active_gym"] = map[string]any{"gym_logo": "logo.png"}
			},
			wantPaths: []string{"active_gym.gym_name"},
		},
		{
			name: "unknown field inside embedded gym",
			mutate: func(doc map[string]any) {
				doc["active_gym"] = map[string]any{"gym_name": "Iron Temple", "rating": 4.5}
			},
			wantPaths: []string{"active_gym.rating"},
		},
		{
			name: "bad announcement in list",
			mutate: func(doc map[string]any) {
				doc["announcements"] = []any{
					map[string]any{"title": "hi", "body": "there"},
					map[string]any{"title": "", "body": "x"},
				}
			},
			wantPaths: []string{"announcements.1.title"},
		},
		{
			name: "device info missing token",
			mutate: func(doc map[string]any) {
				doc["device_info"] = map[string]any{
					"id": "d1", "user_id": "u1", "platform": "android", "app_version": "1.2.0",
				}
			},
			wantPaths: []string{"device_info.token"},
		},
		{
			name:      "bad date of birth",
			mutate:    func(doc map[string]any) { doc["date_of_birth"] = "June 10th" },
			wantPaths: []string{"date_of_birth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validUserDoc()
			tt.mutate(doc)

			_, err := ParseUser(doc)
			require.NotNil(t, err)
			assert.Equal(t, "Invalid request payload", err.Message)

			var paths []string
			for _, is := range err.Issues {
				paths = append(paths, is.Path)
			}
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}

func TestParseUser_CollectsAllIssues(t *testing.T) {
	doc := validUserDoc()
	delete(doc, "name")
	doc["role"] = "Janitor"
	doc["extra"] = true

	_, err := ParseUser(doc)
	require.NotNil(t, err)
	require.Len(t, err.Issues, 3)
	// Field issues in declaration order, unknown keys last.
	assert.Equal(t, "name", err.Issues[0].Path)
	assert.Equal(t, "role", err.Issues[1].Path)
	assert.Equal(t, "extra", err.Issues[2].Path)
}

func TestParseUser_EmbeddedPlanAndSubscription(t *testing.T) {
	doc := validUserDoc()
	doc["active_gym_plan"] = map[string]any{
		"plan_name":    "Quarterly",
		"plan_charges": 1500.0,
	}
	doc["active_subscription_plan"] = map[string]any{
		"plan_name":        "Gold",
		"plan_charges":     499.0,
		"plan_description": "annual billing",
	}

	u, err := ParseUser(doc)
	require.Nil(t, err)
	require.NotNil(t, u.ActiveGymPlan)
	assert.Equal(t, "Quarterly", u.ActiveGymPlan.PlanName)
	assert.True(t, u.ActiveGymPlan.IsActive)
	require.NotNil(t, u.ActiveSubPlan)
	assert.Equal(t, 499.0, u.ActiveSubPlan.PlanCharges)
	assert.True(t, u.ActiveSubPlan.IsActive)
}

func TestParseUser_NilBody(t *testing.T) {
	_, err := ParseUser(nil)
	require.NotNil(t, err)
	var paths []string
	for _, is := range err.Issues {
		paths = append(paths, is.Path)
	}
	assert.Equal(t, []string{"name"}, paths)
}
