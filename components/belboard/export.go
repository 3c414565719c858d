package belboard

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ettle/strcase"
)

// accountExportColumns are the display column names of the accounts
// table; headers are emitted in snake_case so downstream spreadsheets
// and loaders get stable identifiers.
var accountExportColumns = []string{
	"ReferralID",
	"Name",
	"Email",
	"Tier",
	"Region",
	"Country",
	"Clicks30d",
	"Orders30d",
	"Revenue30d",
	"ConvRate",
	"AOV",
}

// ExportAccountsCSV writes the account rows as CSV, one row per account
// in the given order. Callers export the filtered/sorted set, so running
// it after Process mirrors exactly what the table shows.
func ExportAccountsCSV(w io.Writer, accounts []Account) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(accountExportColumns))
	for i, col := range accountExportColumns {
		header[i] = strcase.ToSnake(col)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("belboard: write csv header: %w", err)
	}
	for _, a := range accounts {
		row := []string{
			a.ID,
			a.Name,
			a.Email,
			string(a.Tier),
			a.Region(),
			a.Country(),
			fmt.Sprintf("%d", a.Clicks30),
			fmt.Sprintf("%d", a.Orders30),
			fmt.Sprintf("%.2f", a.Revenue30),
			fmt.Sprintf("%.4f", a.ConversionRate()),
			fmt.Sprintf("%.2f", a.AverageOrderValue()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("belboard: write csv row %s: %w", a.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("belboard: flush csv: %w", err)
	}
	return nil
}

// ExportPayoutsCSV flattens payout batches into one CSV row per detail
// line.
func ExportPayoutsCSV(w io.Writer, batches []PayoutBatch) error {
	cw := csv.NewWriter(w)
	header := []string{
		strcase.ToSnake("BatchDate"),
		strcase.ToSnake("PayoutID"),
		strcase.ToSnake("ReferralID"),
		strcase.ToSnake("BELName"),
		strcase.ToSnake("Gross"),
		strcase.ToSnake("Fees"),
		strcase.ToSnake("Tax"),
		strcase.ToSnake("Net"),
		strcase.ToSnake("Status"),
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("belboard: write csv header: %w", err)
	}
	for _, batch := range batches {
		for _, d := range batch.Details {
			row := []string{
				batch.Date,
				d.PayoutID,
				d.ReferralID,
				d.BELName,
				fmt.Sprintf("%.2f", d.Gross),
				fmt.Sprintf("%.2f", d.Fees),
				fmt.Sprintf("%.2f", d.Tax),
				fmt.Sprintf("%.2f", d.Net),
				d.Status,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("belboard: write csv row %s: %w", d.PayoutID, err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("belboard: flush csv: %w", err)
	}
	return nil
}
