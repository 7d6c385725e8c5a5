package mobile

// PhoneInfo carries metadata derived from a parsed phone number.
type PhoneInfo struct {
	CountryCode string // e.g. "+966"
	CountryName string // e.g. "Saudi Arabia"
	CountryISO  string // e.g. "SA"
	CarrierName string // e.g. "STC", best-effort
	NumberType  string // e.g. "MOBILE"
}

// PhoneParser parses and validates raw phone numbers.
//
// Normalize must reject numbers that cannot be parsed or are not mobile
// (or fixed-line-or-mobile) numbers, returning the E.164 representation
// otherwise. Extract is best-effort: when metadata cannot be derived it
// returns ok=false and the caller leaves the fields blank instead of
// failing the save.
type PhoneParser interface {
	Normalize(raw string) (string, error)
	Extract(e164 string) (PhoneInfo, bool)
}
