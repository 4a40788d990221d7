package models

// FamilyPaymentRow is the per-family line on the payments screen: the latest
// payment's stored figures when one exists, otherwise the live fee estimate,
// plus the resolved membership standing.
type FamilyPaymentRow struct {
	FamilyID        string `json:"family_id"`
	Surname         string `json:"surname"`
	FirstAdultName  string `json:"first_adult_name"`
	SecondAdultName string `json:"second_adult_name"`
	MonthlyFee      int64  `json:"monthly_fee"`
	AnnualFee       int64  `json:"annual_fee"`
	AmountPaid      int64  `json:"amount_paid"`
	PaidUntil       string `json:"paid_until,omitempty"`
	Method          string `json:"method,omitempty"`
	Reference       string `json:"reference,omitempty"`
	StatusLabel     string `json:"status_label"`
	StatusSeverity  string `json:"status_severity"`
	Estimated       bool   `json:"estimated"` // true when fees are calculated, not recorded
}

// DashboardStats summarises the association's overall position.
type DashboardStats struct {
	TotalIncome   int64 `json:"total_income"`
	TotalExpenses int64 `json:"total_expenses"`
	Net           int64 `json:"net"`
	FamilyCount   int   `json:"family_count"`
	MemberCount   int   `json:"member_count"`
}

// MonthTotal is one aggregated ledger bucket.
type MonthTotal struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// MonthlyStat is one bar pair on the statistics chart.
type MonthlyStat struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// ExpenseMonthSummary aggregates a month's expense rows per category.
type ExpenseMonthSummary struct {
	Month     string `json:"month"`
	Rent      int64  `json:"rent"`
	Breakfast int64  `json:"breakfast"`
	Bills     int64  `json:"bills"`
	Other     int64  `json:"other"`
	Total     int64  `json:"total"`
}
