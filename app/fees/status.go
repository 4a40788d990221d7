package fees

import (
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

// WarningWindowDays is how close to the paid-until date a membership is
// flagged as expiring.
const WarningWindowDays = 30

// Status labels. Templates translate these for display; the API returns them
// as-is.
const (
	LabelUnpaid       = "Unpaid"
	LabelLapsed       = "Lapsed"
	LabelExpiringSoon = "Expiring soon"
	LabelCurrent      = "Current"
)

// Status is a membership standing classification. It is derived on every
// render, never persisted.
type Status struct {
	Label    string          `json:"label"`
	Severity models.Severity `json:"severity"`
}

// ResolveStatus classifies a family's standing from its latest payment's
// paid-until date (ISO calendar date) relative to today. An empty or
// unparseable date fails closed to Unpaid: this sits on the display path and
// must never block rendering. Comparison is at calendar-day granularity; both
// sides are normalized to midnight so time of day cannot shift the result.
func ResolveStatus(paidUntil string, today time.Time) Status {
	if paidUntil == "" {
		return Status{Label: LabelUnpaid, Severity: models.SeverityError}
	}

	until, err := time.ParseInLocation("2006-01-02", paidUntil, today.Location())
	if err != nil {
		return Status{Label: LabelUnpaid, Severity: models.SeverityError}
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	switch {
	case until.Before(day):
		return Status{Label: LabelLapsed, Severity: models.SeverityError}
	case until.Before(day.AddDate(0, 0, WarningWindowDays)):
		return Status{Label: LabelExpiringSoon, Severity: models.SeverityWarning}
	default:
		return Status{Label: LabelCurrent, Severity: models.SeverityOK}
	}
}
