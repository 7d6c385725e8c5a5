// Package phone implements phone number validation and metadata
// extraction on top of the phonenumbers library.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/rawad-inc/rawad/internal/domain/mobile"
)

// defaultRegion is used when a number is given without an international
// prefix.
const defaultRegion = "SA"

// Parser validates numbers and derives their metadata. It accepts mobile
// and fixed-line-or-mobile numbers only.
type Parser struct {
	region string
}

// NewParser creates a parser with the default region.
func NewParser() *Parser {
	return &Parser{region: defaultRegion}
}

// NewParserWithRegion creates a parser using the given ISO region for
// numbers without an international prefix.
func NewParserWithRegion(region string) *Parser {
	return &Parser{region: region}
}

// Normalize parses and validates the raw number and returns its E.164
// representation. Numbers that cannot be parsed, fail validation or are
// not mobile-capable are rejected.
func (p *Parser) Normalize(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), p.region)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
	default:
		return "", fmt.Errorf("not a mobile number: %s", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Extract derives country and carrier metadata from an E.164 number.
// It is best-effort: any failure reports ok=false and the caller stores
// blank fields.
func (p *Parser) Extract(e164 string) (mobile.PhoneInfo, bool) {
	num, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return mobile.PhoneInfo{}, false
	}

	region := phonenumbers.GetRegionCodeForNumber(num)
	if region == "" {
		return mobile.PhoneInfo{}, false
	}

	info := mobile.PhoneInfo{
		CountryCode: fmt.Sprintf("+%d", num.GetCountryCode()),
		CountryISO:  region,
		CountryName: regionDisplayName(region),
		NumberType:  numberTypeName(phonenumbers.GetNumberType(num)),
	}

	if carrier, err := phonenumbers.GetCarrierForNumber(num, "en"); err == nil {
		info.CarrierName = carrier
	}

	return info, true
}

func numberTypeName(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.MOBILE:
		return "MOBILE"
	case phonenumbers.FIXED_LINE:
		return "FIXED_LINE"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	default:
		return "UNKNOWN"
	}
}

// regionDisplayName resolves the English name for an ISO region via the
// CLDR data. Regions the data does not know fall back to the ISO code,
// which is still useful for display.
func regionDisplayName(region string) string {
	r, err := language.ParseRegion(region)
	if err != nil {
		return region
	}
	if name := display.English.Regions().Name(r); name != "" {
		return name
	}
	return region
}
