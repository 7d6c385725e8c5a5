package valueobjects

import "fmt"

// CompanySize buckets a company by employee count.
type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

var validCompanySizes = map[CompanySize]bool{
	CompanySizeStartup:    true,
	CompanySizeSmall:      true,
	CompanySizeMedium:     true,
	CompanySizeLarge:      true,
	CompanySizeEnterprise: true,
}

func NewCompanySize(value string) (CompanySize, error) {
	s := CompanySize(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid company size: %s", value)
	}
	return s, nil
}

func (s CompanySize) String() string {
	return string(s)
}

func (s CompanySize) IsValid() bool {
	return validCompanySizes[s]
}

// DisplayName returns the employee-count range for the size.
func (s CompanySize) DisplayName() string {
	switch s {
	case CompanySizeStartup:
		return "1-10 employees"
	case CompanySizeSmall:
		return "11-50 employees"
	case CompanySizeMedium:
		return "51-200 employees"
	case CompanySizeLarge:
		return "201-1000 employees"
	case CompanySizeEnterprise:
		return "1000+ employees"
	default:
		return string(s)
	}
}
