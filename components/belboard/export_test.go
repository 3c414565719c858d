package belboard

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestExportAccountsCSV(t *testing.T) {
	var buf bytes.Buffer
	accounts := []Account{
		{ID: "KTWADVANT", Name: "Maxwell Walker", Email: "max@example.com", Tier: TierExplorer, Clicks30: 1280, Orders30: 35, Revenue30: 8500},
	}
	if err := ExportAccountsCSV(&buf, accounts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(records))
	}
	header := strings.Join(records[0], ",")
	if !strings.Contains(header, "referral_id") || !strings.Contains(header, "conv_rate") {
		t.Fatalf("snake_case header missing fields: %s", header)
	}
	row := records[1]
	if row[0] != "KTWADVANT" || row[5] != "Taiwan" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[9] != "0.0273" {
		t.Fatalf("conv rate = %s", row[9])
	}
}

func TestExportAccountsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportAccountsCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 1 {
		t.Fatal("empty export should still write the header")
	}
}

func TestExportPayoutsCSVFlattens(t *testing.T) {
	var buf bytes.Buffer
	batches := []PayoutBatch{
		{
			Date: "2025-08-05",
			Details: []PayoutDetail{
				{PayoutID: "RP-000001", ReferralID: "KTWADVANT", BELName: "Maxwell Walker", Gross: 850.25, Net: 790.73, Status: "Success"},
				{PayoutID: "RP-000002", ReferralID: "KUSOLVACE", BELName: "Olivia Chen", Gross: 720.50, Net: 670.06, Status: "Success"},
			},
		},
	}
	if err := ExportPayoutsCSV(&buf, batches); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus two detail rows, got %d", len(records))
	}
	if records[1][0] != "2025-08-05" || records[2][1] != "RP-000002" {
		t.Fatalf("unexpected rows: %v", records)
	}
}
