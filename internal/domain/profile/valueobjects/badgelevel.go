package valueobjects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BadgeLevel classifies a supporter by cumulative donation total.
type BadgeLevel string

const (
	BadgeBronze   BadgeLevel = "bronze"
	BadgeSilver   BadgeLevel = "silver"
	BadgeGold     BadgeLevel = "gold"
	BadgePlatinum BadgeLevel = "platinum"
	BadgeDiamond  BadgeLevel = "diamond"
)

type badgeTier struct {
	level     BadgeLevel
	label     string
	threshold decimal.Decimal
}

// badgeTiers is ordered by threshold descending so badge selection scans
// from the highest tier down and stops at the first qualifying one.
var badgeTiers = []badgeTier{
	{BadgeDiamond, "Diamond Supporter", decimal.NewFromInt(10000)},
	{BadgePlatinum, "Platinum Supporter", decimal.NewFromInt(5000)},
	{BadgeGold, "Gold Supporter", decimal.NewFromInt(2000)},
	{BadgeSilver, "Silver Supporter", decimal.NewFromInt(500)},
	{BadgeBronze, "Bronze Supporter", decimal.Zero},
}

func NewBadgeLevel(value string) (BadgeLevel, error) {
	b := BadgeLevel(value)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid badge level: %s", value)
	}
	return b, nil
}

// BadgeForTotal returns the highest tier whose threshold is less than or
// equal to the given total. A total exactly equal to a threshold qualifies
// for that tier. Totals below all paid tiers fall back to bronze.
func BadgeForTotal(total decimal.Decimal) BadgeLevel {
	for _, tier := range badgeTiers {
		if total.GreaterThanOrEqual(tier.threshold) {
			return tier.level
		}
	}
	return BadgeBronze
}

func (b BadgeLevel) String() string {
	return string(b)
}

func (b BadgeLevel) IsValid() bool {
	for _, tier := range badgeTiers {
		if tier.level == b {
			return true
		}
	}
	return false
}

// Label returns the display name of the badge.
func (b BadgeLevel) Label() string {
	for _, tier := range badgeTiers {
		if tier.level == b {
			return tier.label
		}
	}
	return string(b)
}

// Threshold returns the minimum cumulative donation total for the badge.
func (b BadgeLevel) Threshold() decimal.Decimal {
	for _, tier := range badgeTiers {
		if tier.level == b {
			return tier.threshold
		}
	}
	return decimal.Zero
}
