package valueobjects

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeForTotal(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		expected BadgeLevel
	}{
		{"zero total is bronze", "0", BadgeBronze},
		{"just below silver stays bronze", "499.99", BadgeBronze},
		{"exact silver threshold qualifies", "500", BadgeSilver},
		{"between silver and gold", "1999.99", BadgeSilver},
		{"exact gold threshold qualifies", "2000", BadgeGold},
		{"exact platinum threshold qualifies", "5000", BadgePlatinum},
		{"exact diamond threshold qualifies", "10000", BadgeDiamond},
		{"above diamond stays diamond", "10000.01", BadgeDiamond},
		{"far above diamond stays diamond", "1000000", BadgeDiamond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := decimal.NewFromString(tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, BadgeForTotal(total))
		})
	}
}

func TestNewBadgeLevel(t *testing.T) {
	b, err := NewBadgeLevel("gold")
	require.NoError(t, err)
	assert.Equal(t, BadgeGold, b)

	_, err = NewBadgeLevel("titanium")
	assert.Error(t, err)
}

func TestBadgeLevelThresholds(t *testing.T) {
	assert.True(t, BadgeBronze.Threshold().IsZero())
	assert.Equal(t, "500", BadgeSilver.Threshold().String())
	assert.Equal(t, "2000", BadgeGold.Threshold().String())
	assert.Equal(t, "5000", BadgePlatinum.Threshold().String())
	assert.Equal(t, "10000", BadgeDiamond.Threshold().String())
}

func TestBadgeLevelLabel(t *testing.T) {
	assert.Equal(t, "Diamond Supporter", BadgeDiamond.Label())
	assert.Equal(t, "Bronze Supporter", BadgeBronze.Label())
}
