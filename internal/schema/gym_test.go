package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGym(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]any
		wantErr   bool
		wantPaths []string
		check     func(t *testing.T, g *Gym)
	}{
		{
			name: "minimal valid gym applies defaults",
			raw: map[string]any{
				"gym_name": "Iron Temple",
				"owner":    "jaspreet",
			},
			check: func(t *testing.T, g *Gym) {
				assert.Equal(t, "Iron Temple", g.Name)
				assert.True(t, g.IsActive)
				assert.True(t, g.SubscriptionStatus)
				assert.Equal(t, "", g.Logo)
				assert.Equal(t, 0.0, g.TotalRevenue)
				assert.Equal(t, []any{}, g.Plans)
				assert.Equal(t, []any{}, g.Members)
			},
		},
		{
			name:      "missing required fields",
			raw:       map[string]any{},
			wantErr:   true,
			wantPaths: []string{"gym_name", "owner"},
		},
		{
			name: "whitespace name rejected",
			raw: map[string]any{
				"gym_name": "   ",
				"owner":    "jaspreet",
			},
			wantErr:   true,
			wantPaths: []string{"gym_name"},
		},
		{
			name: "unknown top-level field",
			raw: map[string]any{
				"gym_name":  "Iron Temple",
				"owner":     "jaspreet",
				"wifi_code": "1234",
			},
			wantErr:   true,
			wantPaths: []string{"wifi_code"},
		},
		{
			name: "nested address validated",
			raw: map[string]any{
				"gym_name": "Iron Temple",
				"owner":    "jaspreet",
				"address":  map[string]any{"line1": "", "landmark": "near station"},
			},
			wantErr:   true,
			wantPaths: []string{"address.line1", "address.landmark"},
		},
		{
			name: "negative revenue rejected",
			raw: map[string]any{
				"gym_name":      "Iron Temple",
				"owner":         "jaspreet",
				"total_revenue": -10.0,
			},
			wantErr:   true,
			wantPaths: []string{"total_revenue"},
		},
		{
			name: "gym_dob coerced",
			raw: map[string]any{
				"gym_name": "Iron Temple",
				"owner":    "jaspreet",
				"gym_dob":  "2019-03-01",
			},
			check: func(t *testing.T, g *Gym) {
				require.NotNil(t, g.DOB)
				assert.Equal(t, "2019-03-01", g.DOB.Format("2006-01-02"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGym(tt.raw)
			if tt.wantErr {
				require.NotNil(t, err)
				var paths []string
				for _, is := range err.Issues {
					paths = append(paths, is.Path)
				}
				assert.Equal(t, tt.wantPaths, paths)
				return
			}
			require.Nil(t, err)
			require.NotNil(t, g)
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestParseGymPlan(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := ParseGymPlan(map[string]any{
			"gym_id":    "abc123",
			"gym_name":  "Iron Temple",
			"plan_name": "Quarterly",
		})
		require.Nil(t, err)
		assert.True(t, p.IsActive)
		assert.Equal(t, 0.0, p.PlanCharges)
		assert.Equal(t, "", p.PlanDescription)
		assert.Equal(t, 0.0, p.PlanDuration)
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := ParseGymPlan(map[string]any{"plan_name": "Quarterly"})
		require.NotNil(t, err)
		var paths []string
		for _, is := range err.Issues {
			paths = append(paths, is.Path)
		}
		assert.Equal(t, []string{"gym_id", "gym_name"}, paths)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseGymPlan(map[string]any{
			"gym_id":    "abc123",
			"gym_name":  "Iron Temple",
			"plan_name": "Quarterly",
			"discount":  10.0,
		})
		require.NotNil(t, err)
		require.Len(t, err.Issues, 1)
		assert.Equal(t, "discount", err.Issues[0].Path)
	})
}
