package fees

import (
	"strings"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

const (
	// DefaultAdultMonthlyFee is the flat monthly rate per adult. The stored
	// per-adult overrides on the family record are deliberately ignored by
	// the estimate; they only matter once a treasurer records a payment with
	// adjusted figures.
	DefaultAdultMonthlyFee = 200

	// DefaultChildMonthlyFee applies to any child without an override.
	DefaultChildMonthlyFee = 100

	monthsPerYear = 12
)

// ComputeMonthlyFee derives a family's monthly due from its composition:
// 200 kr per named adult plus each child's override (100 kr when unset).
// Total over any family; zero adults and no children yields 0.
func ComputeMonthlyFee(f *models.Family) int64 {
	var total int64
	if strings.TrimSpace(f.FirstAdultName) != "" {
		total += DefaultAdultMonthlyFee
	}
	if strings.TrimSpace(f.SecondAdultName) != "" {
		total += DefaultAdultMonthlyFee
	}
	for _, c := range f.Children {
		if c.MonthlyFee > 0 {
			total += c.MonthlyFee
		} else {
			total += DefaultChildMonthlyFee
		}
	}
	return total
}

// ComputeAnnualFee is the monthly due over a full year.
func ComputeAnnualFee(monthly int64) int64 {
	return monthly * monthsPerYear
}

// LatestPayment picks the most recent payment by creation time. Two payments
// created in the same instant are ordered by id, greatest first, so repeated
// renders of the same data always resolve to the same record.
func LatestPayment(payments []*models.Payment) *models.Payment {
	var latest *models.Payment
	for _, p := range payments {
		if latest == nil {
			latest = p
			continue
		}
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		} else if p.CreatedAt.Equal(latest.CreatedAt) && p.ID > latest.ID {
			latest = p
		}
	}
	return latest
}

// DisplayFees returns the monthly and annual fees to show for a family.
// Fee history is frozen per payment: the latest payment's stored figures
// always win, and the live calculation is only an estimate for families with
// no payment on record. estimated reports which branch was taken.
func DisplayFees(f *models.Family) (monthly, annual int64, estimated bool) {
	if p := LatestPayment(f.Payments); p != nil {
		return p.MonthlyFee, p.AnnualFee, false
	}
	monthly = ComputeMonthlyFee(f)
	return monthly, ComputeAnnualFee(monthly), true
}
