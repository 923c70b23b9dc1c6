package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		want  float64
	}{
		{"number", `120`, true, 120},
		{"negative", `-1.5`, true, -1.5},
		{"numeric string", `"0.716"`, true, 0.716},
		{"padded string", `" 42 "`, true, 42},
		{"trailing unit", `"0.85%"`, true, 0.85},
		{"leading digits", `"12abc"`, true, 12},
		{"exponent string", `"1e3"`, true, 1000},
		{"null", `null`, false, 0},
		{"garbage string", `"not-a-number"`, false, 0},
		{"NaN string", `"NaN"`, false, 0},
		{"Infinity string", `"Infinity"`, false, 0},
		{"bool", `true`, false, 0},
		{"object", `{"v":1}`, false, 0},
		{"empty string", `""`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.OrZero())
		})
	}
}

func TestNumberMissingFieldIsInvalid(t *testing.T) {
	var v struct {
		Accuracy Number `json:"accuracy"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))
	assert.False(t, v.Accuracy.Valid)
	assert.Equal(t, 7.0, v.Accuracy.Or(7))
}

func TestNumberMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}{A: NumberOf(1.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.5,"b":null}`, string(b))
}

func TestOptionalStringAcceptsNumbers(t *testing.T) {
	var v struct {
		Score OptionalString `json:"CV Score"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"CV Score": 0.912}`), &v))
	assert.True(t, v.Score.Valid)
	assert.Equal(t, "0.912", v.Score.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"CV Score": ""}`), &v))
	assert.False(t, v.Score.Valid)
}

func TestModelInfoNormalization(t *testing.T) {
	var m ModelInfo
	require.NoError(t, json.Unmarshal([]byte(`{
		"model_name": "Gradient Boosting",
		"model_type": "GradientBoostingClassifier",
		"accuracy": "not-a-number",
		"precision": 0.501,
		"recall": "0.716",
		"CV Folds": "5.0"
	}`), &m))
	m.Normalize()

	assert.False(t, m.Accuracy.Valid)
	assert.Equal(t, 0.501, m.Precision.Value)
	assert.Equal(t, 0.716, m.Recall.Value)
	assert.False(t, m.F1Score.Valid)
	assert.Equal(t, 5.0, m.CVFolds.Value)
	assert.False(t, m.CVScore.Valid)
}

func TestInsightsNormalization(t *testing.T) {
	in := Insights{
		BalanceDurationSample: []BalanceDurationSample{
			{Balance: Number{}, Duration: NumberOf(120), Y: "no"},
		},
		AgeDistribution: []AgeDistributionPoint{{AgeGroup: "30-40", Subscribed: NumberOf(10)}},
	}
	in.Normalize()

	s := in.BalanceDurationSample[0]
	assert.True(t, s.Balance.Valid)
	assert.Equal(t, 0.0, s.Balance.Value)
	assert.Equal(t, 120.0, s.Duration.Value)
	assert.True(t, in.AgeDistribution[0].NotSubscribed.Valid)
}

func TestModelInfoReadsNumericPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		accuracy Number
		folds    Number
	}{
		{"units after numbers", `{"accuracy":"0.85%","CV Folds":"5 folds"}`, NumberOf(0.85), NumberOf(5)},
		{"exponent folds keep leading digits", `{"CV Folds":"1e3"}`, Number{}, NumberOf(1)},
		{"fractional json folds", `{"CV Folds":5.9}`, Number{}, NumberOf(5)},
		{"no digits", `{"accuracy":"n/a","CV Folds":"folds"}`, Number{}, Number{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m ModelInfo
			require.NoError(t, json.Unmarshal([]byte(tt.body), &m))
			assert.Equal(t, tt.accuracy, m.Accuracy)
			assert.Equal(t, tt.folds, m.CVFolds.Number)
		})
	}
}
