package valueobjects

import "fmt"

// PublisherType classifies who is publishing jobs under an individual
// client profile.
type PublisherType string

const (
	PublisherCompany          PublisherType = "company"
	PublisherBusinessOwner    PublisherType = "business_owner"
	PublisherIndividualClient PublisherType = "individual_client"
)

var validPublisherTypes = map[PublisherType]bool{
	PublisherCompany:          true,
	PublisherBusinessOwner:    true,
	PublisherIndividualClient: true,
}

func NewPublisherType(value string) (PublisherType, error) {
	p := PublisherType(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid publisher type: %s", value)
	}
	return p, nil
}

func (p PublisherType) String() string {
	return string(p)
}

func (p PublisherType) IsValid() bool {
	return validPublisherTypes[p]
}
