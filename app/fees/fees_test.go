package fees

import (
	"testing"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
)

func TestComputeMonthlyFee(t *testing.T) {
	tests := []struct {
		name   string
		family *models.Family
		want   int64
	}{
		{
			name:   "empty family",
			family: &models.Family{Surname: "Youkhana"},
			want:   0,
		},
		{
			name:   "single adult",
			family: &models.Family{Surname: "Oraha", FirstAdultName: "Sargon"},
			want:   200,
		},
		{
			name: "two adults no children",
			family: &models.Family{
				Surname:         "Younan",
				FirstAdultName:  "Ashur",
				SecondAdultName: "Shamiram",
			},
			want: 400,
		},
		{
			name: "second adult only",
			family: &models.Family{Surname: "Khoshaba", SecondAdultName: "Ninwe"},
			want: 200,
		},
		{
			name: "whitespace adult name does not count",
			family: &models.Family{
				Surname:        "Odisho",
				FirstAdultName: "   ",
			},
			want: 0,
		},
		{
			name: "children with defaults",
			family: &models.Family{
				Surname:        "Bidawid",
				FirstAdultName: "Yonan",
				Children: []*models.Child{
					{Position: 1, Name: "Nahrin"},
					{Position: 2, Name: "Ramsin"},
				},
			},
			want: 400,
		},
		{
			name: "child fee override",
			family: &models.Family{
				Surname:        "Lazar",
				FirstAdultName: "Gewargis",
				Children: []*models.Child{
					{Position: 1, Name: "Atour", MonthlyFee: 150},
				},
			},
			want: 350,
		},
		{
			name: "zero child override falls back to default",
			family: &models.Family{
				Surname:        "Shlimon",
				FirstAdultName: "Daniel",
				Children: []*models.Child{
					{Position: 1, Name: "Sara", MonthlyFee: 0},
				},
			},
			want: 300,
		},
		{
			name: "adult fee overrides on the family record are ignored",
			family: &models.Family{
				Surname:         "Baba",
				FirstAdultName:  "Isho",
				FirstAdultFee:   500,
				SecondAdultName: "Maryam",
				SecondAdultFee:  50,
			},
			want: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeMonthlyFee(tt.family); got != tt.want {
				t.Errorf("ComputeMonthlyFee() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeAnnualFee(t *testing.T) {
	for _, monthly := range []int64{0, 100, 350, 400, 1200} {
		if got := ComputeAnnualFee(monthly); got != monthly*12 {
			t.Errorf("ComputeAnnualFee(%d) = %d, want %d", monthly, got, monthly*12)
		}
	}
}

func TestLatestPayment(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty list", func(t *testing.T) {
		if got := LatestPayment(nil); got != nil {
			t.Errorf("LatestPayment(nil) = %v, want nil", got)
		}
	})

	t.Run("newest created_at wins", func(t *testing.T) {
		old := &models.Payment{ID: "b", CreatedAt: base}
		newer := &models.Payment{ID: "a", CreatedAt: base.Add(time.Hour)}
		if got := LatestPayment([]*models.Payment{old, newer}); got != newer {
			t.Errorf("got %v, want the newer payment", got)
		}
	})

	t.Run("equal timestamps break on greatest id", func(t *testing.T) {
		p1 := &models.Payment{ID: "1111", CreatedAt: base}
		p2 := &models.Payment{ID: "2222", CreatedAt: base}
		if got := LatestPayment([]*models.Payment{p1, p2}); got != p2 {
			t.Errorf("got id %s, want 2222", got.ID)
		}
		// Order of the input slice must not matter.
		if got := LatestPayment([]*models.Payment{p2, p1}); got != p2 {
			t.Errorf("got id %s after reorder, want 2222", got.ID)
		}
	})
}

func TestDisplayFees(t *testing.T) {
	t.Run("no payments uses live estimate", func(t *testing.T) {
		f := &models.Family{
			Surname:         "Younan",
			FirstAdultName:  "Ashur",
			SecondAdultName: "Shamiram",
		}
		monthly, annual, estimated := DisplayFees(f)
		if monthly != 400 || annual != 4800 {
			t.Errorf("got %d/%d, want 400/4800", monthly, annual)
		}
		if !estimated {
			t.Error("expected estimated fees for a family with no payments")
		}
	})

	t.Run("stored fees shadow recomputation", func(t *testing.T) {
		f := &models.Family{
			Surname:        "Lazar",
			FirstAdultName: "Gewargis",
			Children: []*models.Child{
				{Position: 1, Name: "Atour", MonthlyFee: 150},
			},
			Payments: []*models.Payment{
				{ID: "p1", MonthlyFee: 275, AnnualFee: 3300, CreatedAt: time.Now()},
			},
		}
		monthly, annual, estimated := DisplayFees(f)
		if monthly != 275 || annual != 3300 {
			t.Errorf("got %d/%d, want the recorded 275/3300", monthly, annual)
		}
		if estimated {
			t.Error("recorded fees must not be flagged as estimated")
		}
	})
}

func TestResolveStatus(t *testing.T) {
	today := time.Date(2026, 8, 30, 15, 42, 7, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	tests := []struct {
		name      string
		paidUntil string
		wantLabel string
		wantSev   models.Severity
	}{
		{"no payment", "", LabelUnpaid, models.SeverityError},
		{"garbage date fails closed", "not-a-date", LabelUnpaid, models.SeverityError},
		{"yesterday is lapsed", day(-1), LabelLapsed, models.SeverityError},
		{"long lapsed", day(-400), LabelLapsed, models.SeverityError},
		{"today is still valid", day(0), LabelExpiringSoon, models.SeverityWarning},
		{"day 29 is expiring", day(29), LabelExpiringSoon, models.SeverityWarning},
		{"day 30 is current", day(30), LabelCurrent, models.SeverityOK},
		{"far future", day(365), LabelCurrent, models.SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatus(tt.paidUntil, today)
			if got.Label != tt.wantLabel || got.Severity != tt.wantSev {
				t.Errorf("ResolveStatus(%q) = %v, want {%s %s}",
					tt.paidUntil, got, tt.wantLabel, tt.wantSev)
			}
		})
	}
}

// The resolver is a pure function of its inputs: time of day must never shift
// the classification.
func TestResolveStatusIgnoresTimeOfDay(t *testing.T) {
	paidUntil := "2026-09-10"
	morning := time.Date(2026, 9, 10, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 9, 10, 23, 59, 59, 0, time.UTC)

	a := ResolveStatus(paidUntil, morning)
	b := ResolveStatus(paidUntil, night)
	if a != b {
		t.Errorf("same calendar day classified differently: %v vs %v", a, b)
	}
	if a.Label == LabelLapsed {
		t.Error("paid-until equal to today must not be lapsed")
	}
}
