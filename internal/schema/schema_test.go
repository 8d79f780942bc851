package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "rfc3339", input: "1995-06-10T00:00:00Z", want: "1995-06-10"},
		{name: "calendar date", input: "1995-06-10", want: "1995-06-10"},
		{name: "epoch millis", input: float64(802742400000), want: "1995-06-10"},
		{name: "garbage string", input: "next tuesday", wantErr: true},
		{name: "boolean", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.UTC().Format("2006-01-02"))
		})
	}
}

func TestParseContact(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		wantPaths []string
	}{
		{
			name: "valid",
			raw:  map[string]any{"email": "jas@gym.in", "phone": "+91 98765 43210"},
		},
		{
			name:      "bad email",
			raw:       map[string]any{"email": "not-an-email"},
			wantPaths: []string{"contact_details.email"},
		},
		{
			name:      "bad phone",
			raw:       map[string]any{"phone": "abc"},
			wantPaths: []string{"contact_details.phone"},
		},
		{
			name:      "unknown field",
			raw:       map[string]any{"email": "jas@gym.in", "telegram": "@jas"},
			wantPaths: []string{"contact_details.telegram"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issues []Issue
			parseContact(tt.raw, "contact_details", &issues)

			var paths []string
			for _, is := range issues {
				paths = append(paths, is.Path)
			}
			assert.Equal(t, tt.wantPaths, paths)
		})
	}
}

func TestParseMeasurements_Defaults(t *testing.T) {
	var issues []Issue
	m := parseMeasurements(map[string]any{"height": 180.5}, "measurements", &issues)

	require.Empty(t, issues)
	assert.Equal(t, 180.5, m.Height)
	assert.Equal(t, 0.0, m.Weight)
}

func TestParseMeasurements_Negative(t *testing.T) {
	var issues []Issue
	parseMeasurements(map[string]any{"weight": -5.0}, "measurements", &issues)

	require.Len(t, issues, 1)
	assert.Equal(t, "measurements.weight", issues[0].Path)
}

func TestParseAnnouncement(t *testing.T) {
	var issues []Issue
	a := parseAnnouncement(map[string]any{
		"title": "Diwali hours",
		"body":  "Closed on Sunday",
		"type":  "Notification",
	}, "announcements.0", &issues)

	require.Empty(t, issues)
	assert.Equal(t, "Diwali hours", a.Title)
	assert.Equal(t, "Notification", a.Type)
}

func TestParseAnnouncement_BadType(t *testing.T) {
	var issues []Issue
	parseAnnouncement(map[string]any{
		"title": "x", "body": "y", "type": "Broadcast",
	}, "announcements.0", &issues)

	require.Len(t, issues, 1)
	assert.Equal(t, "announcements.0.type", issues[0].Path)
}

func TestParseSubscriptionPlan_ChargesFloor(t *testing.T) {
	var issues []Issue
	parseSubscriptionPlan(map[string]any{
		"plan_name":        "Gold",
		"plan_charges":     0.0,
		"plan_description": "annual",
	}, "active_subscription_plan", &issues)

	require.Len(t, issues, 1)
	assert.Equal(t, "active_subscription_plan.plan_charges", issues[0].Path)
}

func TestUnknownFields_Sorted(t *testing.T) {
	var issues []Issue
	o := newObject(map[string]any{"zeta": 1, "alpha": 2}, "", &issues)
	o.unknownFields("gym document")

	require.Len(t, issues, 2)
	assert.Equal(t, "alpha", issues[0].Path)
	assert.Equal(t, "zeta", issues[1].Path)
	assert.Equal(t, "Unknown field in gym document", issues[0].Message)
}

func TestOptionalDate_NullIsAbsent(t *testing.T) {
	var issues []Issue
	o := newObject(map[string]any{"date_of_birth": nil}, "", &issues)

	got := o.optionalDate("date_of_birth")
	assert.Nil(t, got)
	assert.Empty(t, issues)
}

func TestOptionalDate_Timezone(t *testing.T) {
	var issues []Issue
	o := newObject(map[string]any{"date_of_birth": "1990-01-15T10:30:00+05:30"}, "", &issues)

	got := o.optionalDate("date_of_birth")
	require.NotNil(t, got)
	require.Empty(t, issues)
	assert.Equal(t, 1990, got.Year())
	assert.Equal(t, time.January, got.Month())
}
