package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/ashuraya1989-cyber/assyrian-church/app/models"
	"github.com/xuri/excelize/v2"
)

func TestBuildRegisterWorkbook(t *testing.T) {
	today := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	families := []*models.Family{
		{
			ID:              "f1",
			Surname:         "Younan",
			FirstAdultName:  "Ashur",
			SecondAdultName: "Shamiram",
		},
		{
			ID:             "f2",
			Surname:        "Lazar",
			FirstAdultName: "Gewargis",
			Children: []*models.Child{
				{Position: 1, Name: "Atour", MonthlyFee: 150},
			},
			Payments: []*models.Payment{
				{
					ID: "p1", FamilyID: "f2", MonthlyFee: 275, AnnualFee: 3300,
					AmountPaid: 275, PaidUntil: today.AddDate(0, 0, 10).Format("2006-01-02"),
					Method: models.MethodSwish, CreatedAt: today,
				},
			},
		},
	}

	wb, err := BuildRegisterWorkbook(families, today)
	if err != nil {
		t.Fatalf("BuildRegisterWorkbook() error: %v", err)
	}

	data, err := WorkbookBytes(wb)
	if err != nil {
		t.Fatalf("WorkbookBytes() error: %v", err)
	}

	// Read the serialized workbook back and check the interesting cells.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	got := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s) error: %v", sheet, cell, err)
		}
		return v
	}

	// Family with no payments shows the live estimate and Unpaid status.
	if v := got("Families", "E2"); v != "400" {
		t.Errorf("Younan monthly fee = %q, want 400", v)
	}
	if v := got("Families", "H2"); v != "Unpaid" {
		t.Errorf("Younan status = %q, want Unpaid", v)
	}

	// Family with a payment shows the recorded fee, not a recomputation.
	if v := got("Families", "E3"); v != "275" {
		t.Errorf("Lazar monthly fee = %q, want the recorded 275", v)
	}
	if v := got("Families", "H3"); v != "Expiring soon" {
		t.Errorf("Lazar status = %q, want Expiring soon", v)
	}

	// The payment ledger carries the settlement.
	if v := got("Payments", "A2"); v != "Lazar" {
		t.Errorf("payment row surname = %q, want Lazar", v)
	}
	if v := got("Payments", "F2"); v != "swish" {
		t.Errorf("payment row method = %q, want swish", v)
	}
}

func TestExportObjectName(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	want := "register/2026-08-30-member-register.xlsx"
	if got := ExportObjectName(now); got != want {
		t.Errorf("ExportObjectName() = %q, want %q", got, want)
	}
}
