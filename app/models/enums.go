package models

// PaymentMethod defines how a dues payment was settled.
type PaymentMethod string

const (
	MethodSwish        PaymentMethod = "swish"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
	MethodOther        PaymentMethod = "other"
)

// Valid reports whether the method is one of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodSwish, MethodBankTransfer, MethodCash, MethodOther:
		return true
	}
	return false
}

// Severity classifies how a membership standing should be highlighted.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Months holds the month names used as keys in the bookkeeping tables. The
// ledger was kept in Swedish long before this system existed, so the income
// and expense rows key on these names rather than on numeric months.
var Months = [12]string{
	"Januari", "Februari", "Mars", "April", "Maj", "Juni",
	"Juli", "Augusti", "September", "Oktober", "November", "December",
}

// ValidMonth reports whether name is one of the twelve ledger month names.
func ValidMonth(name string) bool {
	for _, m := range Months {
		if m == name {
			return true
		}
	}
	return false
}
