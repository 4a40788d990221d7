package models

import "testing"

func TestPaymentMethodValid(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		want   bool
	}{
		{MethodSwish, true},
		{MethodBankTransfer, true},
		{MethodCash, true},
		{MethodOther, true},
		{PaymentMethod(""), false},
		{PaymentMethod("card"), false},
		{PaymentMethod("Swish"), false},
	}

	for _, tt := range tests {
		if got := tt.method.Valid(); got != tt.want {
			t.Errorf("PaymentMethod(%q).Valid() = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func TestValidMonth(t *testing.T) {
	for _, m := range Months {
		if !ValidMonth(m) {
			t.Errorf("ValidMonth(%q) = false, want true", m)
		}
	}

	for _, name := range []string{"", "January", "januari", "Midsommar"} {
		if ValidMonth(name) {
			t.Errorf("ValidMonth(%q) = true, want false", name)
		}
	}
}
