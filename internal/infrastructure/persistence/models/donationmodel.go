package models

import "github.com/shopspring/decimal"

type DonationModel struct {
	ID          uint            `gorm:"primaryKey"`
	SupporterID uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   int64           `gorm:"autoCreateTime:milli;not null;index"`
}

func (DonationModel) TableName() string {
	return "donations"
}
