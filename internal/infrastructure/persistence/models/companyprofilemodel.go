package models

type CompanyProfileModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"uniqueIndex;not null"`
	CompanyName    string `gorm:"size:200;not null"`
	CompanyType    string `gorm:"size:100;not null"`
	LicenseNumber  string `gorm:"size:100;uniqueIndex;not null"`
	CompanySize    string `gorm:"size:20;not null;index"`
	HeadquartersID *uint  `gorm:"index"`
	Website        string `gorm:"size:500"`
	LogoURL        string `gorm:"size:500"`
	PhotoURL       string `gorm:"size:500"`
	Location       string `gorm:"size:200"`
	Bio            string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CompanyProfileModel) TableName() string {
	return "company_profiles"
}
