// Package report renders the store data as an Excel workbook.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/photobill/internal/calculator"
	"github.com/mmynk/photobill/internal/models"
)

// Sheet names, in workbook order.
const (
	SheetInventory = "Inventory"
	SheetBills     = "Bills"
	SheetSummary   = "Summary"
)

var (
	inventoryHeader = []any{"ID", "Name", "Price", "Quantity", "Stock Value"}
	billsHeader     = []any{"Bill ID", "Created At", "Product ID", "Product", "Price", "Quantity", "Line Total", "Bill Total"}
)

// WriteWorkbook writes inventory, bills (one row per bill item) and the
// account/cashflow summary to w as an .xlsx file.
func WriteWorkbook(w io.Writer, snapshot models.Snapshot, account calculator.Account, cashflow calculator.Cashflow) error {
	file := excelize.NewFile()
	defer file.Close()

	header, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := file.SetSheetName("Sheet1", SheetInventory); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetBills, SheetSummary} {
		if _, err := file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeInventory(file, snapshot.Inventory, header); err != nil {
		return err
	}
	if err := writeBills(file, snapshot.Bills, header); err != nil {
		return err
	}
	if err := writeSummary(file, snapshot.Profile, account, cashflow, header); err != nil {
		return err
	}

	file.SetActiveSheet(0)
	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeInventory(file *excelize.File, products []models.Product, header int) error {
	rows := make([][]any, 0, len(products)+1)
	rows = append(rows, inventoryHeader)
	for _, p := range products {
		rows = append(rows, []any{p.ID, p.Name, p.Price, p.Quantity, p.Price * float64(p.Quantity)})
	}
	return writeRows(file, SheetInventory, rows, header)
}

func writeBills(file *excelize.File, bills []models.Bill, header int) error {
	rows := [][]any{billsHeader}
	for _, b := range bills {
		createdAt := b.CreatedAt.UTC().Format(time.RFC3339)
		for _, item := range b.Items {
			rows = append(rows, []any{
				b.ID, createdAt, item.ProductID, item.Name,
				item.Price, item.Quantity, item.Price * float64(item.Quantity), b.Total,
			})
		}
	}
	return writeRows(file, SheetBills, rows, header)
}

func writeSummary(file *excelize.File, profile models.Profile, account calculator.Account, cashflow calculator.Cashflow, header int) error {
	rows := [][]any{
		{"Metric", "Value"},
		{"Store Name", profile.StoreName},
		{"Owner Name", profile.OwnerName},
		{"Opening Balance", profile.OpeningBalance},
		{"Total Revenue", account.TotalRevenue},
		{"Net Profit", account.NetProfit},
		{"Average Daily Sales", account.AvgDailySales},
		{"Business Health", string(account.Health)},
		{"Cash Balance", cashflow.CashBalance},
		{"Inventory Value", cashflow.InventoryValue},
		{"Pending Payments", cashflow.PendingPayments},
		{"Monthly Sales", cashflow.MonthlySales},
		{"Daily Average", cashflow.DailyAverage},
	}
	for i, ps := range account.BestSelling {
		rows = append(rows, []any{fmt.Sprintf("Best Seller #%d", i+1), fmt.Sprintf("%s (%d)", ps.Name, ps.Quantity)})
	}
	return writeRows(file, SheetSummary, rows, header)
}

// writeRows writes rows starting at A1 and bolds the first one.
func writeRows(file *excelize.File, sheet string, rows [][]any, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if err := file.SetRowStyle(sheet, 1, 1, header); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return nil
}
