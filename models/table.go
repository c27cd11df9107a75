package models

import "time"

type Table struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Label           string    `gorm:"type:varchar(50);not null" json:"label"`
	QRCode          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"qrCode"`
	NeedsAssistance bool      `gorm:"not null;default:false" json:"needsAssistance"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"not null" json:"updatedAt"`
}
