package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
)

func TestNewCompanyProfile(t *testing.T) {
	p, err := NewCompanyProfile(1, "Acme Ltd", "marketing", "CR-1020304050", vo.CompanySizeSmall)
	require.NoError(t, err)

	assert.Equal(t, uint(1), p.UserID())
	assert.Equal(t, "Acme Ltd", p.CompanyName())
	assert.Equal(t, "CR-1020304050", p.LicenseNumber())
	assert.Equal(t, vo.CompanySizeSmall, p.CompanySize())
	assert.Nil(t, p.HeadquartersID())
}

func TestNewCompanyProfile_DefaultsToStartup(t *testing.T) {
	p, err := NewCompanyProfile(1, "Acme Ltd", "programming", "CR-1", "")
	require.NoError(t, err)
	assert.Equal(t, vo.CompanySizeStartup, p.CompanySize())
}

func TestNewCompanyProfile_Validation(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		companyName   string
		companyType   string
		licenseNumber string
		size          vo.CompanySize
	}{
		{"missing user", 0, "Acme", "marketing", "CR-1", ""},
		{"missing name", 1, "", "marketing", "CR-1", ""},
		{"missing type", 1, "Acme", "", "CR-1", ""},
		{"missing license", 1, "Acme", "marketing", "", ""},
		{"bad size", 1, "Acme", "marketing", "CR-1", "gigantic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompanyProfile(tt.userID, tt.companyName, tt.companyType, tt.licenseNumber, tt.size)
			assert.Error(t, err)
		})
	}
}

func TestNewIndividualClientProfile_DefaultsType(t *testing.T) {
	p, err := NewIndividualClientProfile(1, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, vo.PublisherIndividualClient, p.PublisherType())
}

func TestNewIndividualClientProfile_BusinessOwner(t *testing.T) {
	p, err := NewIndividualClientProfile(1, vo.PublisherBusinessOwner, "Rami's Bakery", "Fresh bread daily")
	require.NoError(t, err)
	assert.Equal(t, vo.PublisherBusinessOwner, p.PublisherType())
	assert.Equal(t, "Rami's Bakery", p.BusinessName())
}

func TestNewIndividualClientProfile_InvalidType(t *testing.T) {
	_, err := NewIndividualClientProfile(1, "agency", "", "")
	assert.Error(t, err)
}
