package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownUnmarshal_LegacyFlatObject(t *testing.T) {
	payload := []byte(`{"F.18-24": 120, "M.25-34": 80.5}`)

	var b Breakdown
	require.NoError(t, json.Unmarshal(payload, &b))

	assert.Equal(t, Breakdown{"F.18-24": 120, "M.25-34": 80.5}, b)
}

func TestBreakdownUnmarshal_DimensionalList(t *testing.T) {
	payload := []byte(`[
		{"value": 120, "dimension_values": ["F", "25-34"]},
		{"value": 80, "dimension_values": ["M", "18-24"]},
		{"value": 45, "dimension_values": ["São Paulo", "São Paulo (state)"]}
	]`)

	var b Breakdown
	require.NoError(t, json.Unmarshal(payload, &b))

	assert.Equal(t, Breakdown{
		"F, 25-34":                     120,
		"M, 18-24":                     80,
		"São Paulo, São Paulo (state)": 45,
	}, b)
}

func TestBreakdownUnmarshal_DimensionalListKeepsZeroValues(t *testing.T) {
	payload := []byte(`[{"value": 0, "dimension_values": ["F", "65+"]}]`)

	var b Breakdown
	require.NoError(t, json.Unmarshal(payload, &b))

	assert.Equal(t, Breakdown{"F, 65+": 0}, b)
}

func TestBreakdownUnmarshal_DropsIncompleteEntries(t *testing.T) {
	payload := []byte(`[
		{"value": 10},
		{"dimension_values": ["M", "18-24"]},
		"não é um objeto",
		{"value": 30, "dimension_values": ["F", "35-44"]}
	]`)

	var b Breakdown
	require.NoError(t, json.Unmarshal(payload, &b))

	assert.Equal(t, Breakdown{"F, 35-44": 30}, b)
}

func TestBreakdownUnmarshal_MalformedNeverFails(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "JSON inválido", payload: `{truncado`},
		{name: "escalar", payload: `42`},
		{name: "string", payload: `"texto"`},
		{name: "objeto com valor não numérico", payload: `{"F.18-24": "muitos"}`},
		{name: "null", payload: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Breakdown
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &b))
			assert.Empty(t, b)
		})
	}
}

func TestNormalizeBreakdown_Idempotent(t *testing.T) {
	raw := []any{
		map[string]any{"value": float64(120), "dimension_values": []any{"F", "25-34"}},
		map[string]any{"value": float64(80), "dimension_values": []any{"M", "18-24"}},
	}

	once := NormalizeBreakdown(raw)
	twice := NormalizeBreakdown(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeBreakdown_NilInput(t *testing.T) {
	assert.Equal(t, Breakdown{}, NormalizeBreakdown(nil))
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		expected float64
	}{
		{name: "dobro do período anterior", current: 300, previous: 150, expected: 100},
		{name: "queda pela metade", current: 75, previous: 150, expected: -50},
		{name: "sem baseline retorna zero", current: 300, previous: 0, expected: 0},
		{name: "fração arredondada em duas casas", current: 1000, previous: 300, expected: 233.33},
		{name: "sem variação", current: 150, previous: 150, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Growth(tt.current, tt.previous))
		})
	}
}

func TestDailyMetricInteractions(t *testing.T) {
	metric := &DailyMetric{
		ProfileViewsDaily:   10,
		EmailContacts:       2,
		WebsiteClicks:       8,
		PhoneCallClicks:     1,
		TextMessageClicks:   3,
		GetDirectionsClicks: 4,
	}

	assert.Equal(t, 28, metric.Interactions())
}
