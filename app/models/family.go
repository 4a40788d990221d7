package models

import (
	"strings"
	"time"
)

// Family represents one household membership unit. A family is the unit of
// billing: dues are derived from the adults present and the registered
// children unless a recorded payment overrides them.
type Family struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Surname            string    `json:"surname" gorm:"not null" validate:"required"`
	FirstAdultName     string    `json:"first_adult_name"`
	FirstAdultIDNumber string    `json:"first_adult_id_number" gorm:"type:varchar(12)"`
	FirstAdultFee      int64     `json:"first_adult_fee" gorm:"not null;default:200"`
	SecondAdultName    string    `json:"second_adult_name"`
	SecondAdultIDNumber string   `json:"second_adult_id_number" gorm:"type:varchar(12)"`
	SecondAdultFee     int64     `json:"second_adult_fee" gorm:"not null;default:200"`
	Mobile             string    `json:"mobile,omitempty" gorm:"type:varchar(20)"`
	Email              string    `json:"email,omitempty"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	PostalCode         string    `json:"postal_code,omitempty" gorm:"type:varchar(10)"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Children []*Child   `json:"children,omitempty" gorm:"foreignKey:FamilyID;references:ID"`
	Payments []*Payment `json:"payments,omitempty" gorm:"foreignKey:FamilyID;references:ID"`
}

// Child belongs to exactly one family. Position is 1-based and dense within
// the family; the editing boundary keeps it that way on every save.
type Child struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FamilyID   string    `json:"family_id" gorm:"not null;index;type:uuid"`
	Position   int       `json:"position" gorm:"not null"`
	Name       string    `json:"name"`
	IDNumber   string    `json:"id_number" gorm:"type:varchar(12)"`
	MonthlyFee int64     `json:"monthly_fee" gorm:"not null;default:100"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// MaxChildrenPerFamily is enforced at the editing boundary, not in the schema.
const MaxChildrenPerFamily = 6

// HasAdult reports whether at least one adult name is filled in. A name that
// is only whitespace does not count, matching the fee calculator. Families
// without any named adult are rejected on create/edit.
func (f *Family) HasAdult() bool {
	return strings.TrimSpace(f.FirstAdultName) != "" || strings.TrimSpace(f.SecondAdultName) != ""
}
