package strength

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		poolSize int
		want     float64
	}{
		{name: "one bit", length: 1, poolSize: 2, want: 1.0},
		{name: "lowercase only", length: 8, poolSize: 26, want: 8 * math.Log2(26)},
		{name: "full pool", length: 16, poolSize: 95, want: 16 * math.Log2(95)},
		{name: "single character pool", length: 10, poolSize: 1, want: 0},
		{name: "zero length", length: 0, poolSize: 95, want: 0},
		{name: "negative length", length: -4, poolSize: 95, want: 0},
		{name: "zero pool", length: 12, poolSize: 0, want: 0},
		{name: "negative pool", length: 12, poolSize: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Entropy(tt.length, tt.poolSize), 1e-9)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bits float64
		want Tier
	}{
		{bits: -1, want: VeryWeak},
		{bits: 0, want: VeryWeak},
		{bits: 29.99, want: VeryWeak},
		{bits: 30, want: Weak},
		{bits: 39.99, want: Weak},
		{bits: 40, want: Fair},
		{bits: 59.99, want: Fair},
		{bits: 60, want: Strong},
		{bits: 79.99, want: Strong},
		{bits: 80, want: VeryStrong},
		{bits: 500, want: VeryStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.bits), "Classify(%v)", tt.bits)
	}
}

func TestTierBoundsAreOrdered(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 5)
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, tiers[i-1].LowerBound(), tiers[i].LowerBound())
		assert.Equal(t, tiers[i], Classify(tiers[i].LowerBound()))
	}
}

func TestTierText(t *testing.T) {
	b, err := json.Marshal(map[string]Tier{"strength": VeryStrong})
	require.NoError(t, err)
	assert.JSONEq(t, `{"strength":"veryStrong"}`, string(b))

	var decoded struct {
		Strength Tier `json:"strength"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"strength":"fair"}`), &decoded))
	assert.Equal(t, Fair, decoded.Strength)

	assert.Error(t, json.Unmarshal([]byte(`{"strength":"mighty"}`), &decoded))
	assert.Equal(t, "Tier(9)", Tier(9).String())
}

func TestPronounceableEntropy(t *testing.T) {
	want := 5*math.Log2(21) + 5*math.Log2(5) + 2*math.Log2(10)
	assert.InDelta(t, want, PronounceableEntropy(12, true), 1e-9)

	want = 4*math.Log2(21) + 3*math.Log2(5)
	assert.InDelta(t, want, PronounceableEntropy(7, false), 1e-9)
}

func TestCharacterSetInfo(t *testing.T) {
	info := CharacterSetInfo()
	assert.Equal(t, 26, info.Uppercase)
	assert.Equal(t, 26, info.Lowercase)
	assert.Equal(t, 10, info.Digits)
	assert.Equal(t, 33, info.Symbols)
	assert.Equal(t, 95, info.Total)
	assert.InDelta(t, math.Log2(95), info.EntropyPerChar, 1e-9)
}
