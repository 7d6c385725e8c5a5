package models

type WorkSpaceModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"uniqueIndex;size:120;not null"`
	OwnerName       string `gorm:"size:150;not null"`
	ContactNumber   string `gorm:"size:20"`
	LocationID      *uint  `gorm:"index"`
	HasFastInternet bool   `gorm:"not null;default:false"`
	OpeningTime     string `gorm:"size:5"`
	ClosingTime     string `gorm:"size:5"`
	PowerFrom       string `gorm:"size:5"`
	PowerTo         string `gorm:"size:5"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkSpaceModel) TableName() string {
	return "workspaces"
}

type LocationModel struct {
	ID            uint    `gorm:"primaryKey"`
	Latitude      float64 `gorm:"not null"`
	Longitude     float64 `gorm:"not null"`
	AddressLine1  string  `gorm:"size:200"`
	AddressLine2  string  `gorm:"size:200"`
	City          string  `gorm:"size:100"`
	StateProvince string  `gorm:"size:100"`
	PostalCode    string  `gorm:"size:20"`
	Country       string  `gorm:"size:100"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (LocationModel) TableName() string {
	return "locations"
}
