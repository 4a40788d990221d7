package models

import "time"

// Payment records one dues settlement for a family. The monthly and annual
// fees are snapshotted at the time of payment; once a payment exists those
// stored values are authoritative for display and are never recomputed from
// the family's composition.
type Payment struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FamilyID   string        `json:"family_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MonthlyFee int64         `json:"monthly_fee" gorm:"not null"`
	AnnualFee  int64         `json:"annual_fee" gorm:"not null"`
	AmountPaid int64         `json:"amount_paid" gorm:"not null"`
	PaidUntil  string        `json:"paid_until" gorm:"not null;type:date"` // ISO date, membership valid through this day
	Method     PaymentMethod `json:"method" gorm:"not null;type:varchar(20)"`
	Reference  string        `json:"reference,omitempty"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}
