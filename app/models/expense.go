package models

import "time"

// Expense is one weekly bookkeeping row. The association records expenses per
// week in four fixed categories; Total is the sum of the four and is computed
// on the server when the row is created or updated.
type Expense struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Month      string    `json:"month" gorm:"not null;type:varchar(20)" validate:"required"`
	Week       int       `json:"week" gorm:"not null;default:1"`
	Rent       int64     `json:"rent" gorm:"not null;default:0"`
	Breakfast  int64     `json:"breakfast" gorm:"not null;default:0"`
	Bills      int64     `json:"bills" gorm:"not null;default:0"`
	Other      int64     `json:"other" gorm:"not null;default:0"`
	Total      int64     `json:"total" gorm:"not null"`
	Comment    string    `json:"comment,omitempty"`
	ReportedBy string    `json:"reported_by,omitempty"`
	Date       time.Time `json:"date" gorm:"not null;type:date"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// SumCategories recomputes Total from the category columns.
func (e *Expense) SumCategories() int64 {
	return e.Rent + e.Breakfast + e.Bills + e.Other
}

// IncomeRecord is one income ledger row, aggregated per month for the
// statistics and dashboard views.
type IncomeRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Month     string    `json:"month" gorm:"not null;type:varchar(20)" validate:"required"`
	Total     int64     `json:"total" gorm:"not null"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date" gorm:"not null;type:date"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
