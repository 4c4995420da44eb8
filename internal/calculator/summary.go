package calculator

import (
	"time"

	"github.com/mmynk/photobill/internal/models"
)

// Expenses are the externally supplied cost figures used by the summaries.
type Expenses struct {
	// Monthly is subtracted from revenue for net profit.
	Monthly float64

	// Daily is multiplied by 30 for the cashflow expense figure.
	Daily float64

	// PendingPayments is reported as-is on the cashflow summary.
	PendingPayments float64
}

// DefaultExpenses are the fixed figures used when none are configured.
var DefaultExpenses = Expenses{
	Monthly:         12000,
	Daily:           850,
	PendingPayments: 1200,
}

// CashflowExpenses is the expense figure applied to the cash balance.
func (e Expenses) CashflowExpenses() float64 {
	return e.Daily * 30
}

// Account is the business overview derived from bills.
type Account struct {
	TotalRevenue  float64        `json:"totalRevenue"`
	NetProfit     float64        `json:"netProfit"`
	BestSelling   []ProductSales `json:"bestSelling"`
	AvgDailySales float64        `json:"avgDailySales"`
	Health        Health         `json:"health"`
}

// Cashflow is the money-flow overview derived from the whole snapshot.
type Cashflow struct {
	// CashBalance is the raw balance and may be negative.
	CashBalance float64 `json:"cashBalance"`
	// DisplayCashBalance is CashBalance clamped at zero.
	DisplayCashBalance float64 `json:"displayCashBalance"`
	TotalSales         float64 `json:"totalSales"`
	InventoryValue     float64 `json:"inventoryValue"`
	PendingPayments    float64 `json:"pendingPayments"`
	MonthlySales       float64 `json:"monthlySales"`
	DailyAverage       float64 `json:"dailyAverage"`
}

// AccountSummary derives the account overview. Nothing is cached.
func AccountSummary(snapshot models.Snapshot, expenses Expenses) Account {
	revenue := TotalRevenue(snapshot.Bills)
	profit := revenue - expenses.Monthly
	return Account{
		TotalRevenue:  revenue,
		NetProfit:     profit,
		BestSelling:   BestSelling(snapshot.Bills, DefaultTopN),
		AvgDailySales: AvgDailySales(snapshot.Bills),
		Health:        BusinessHealth(profit),
	}
}

// CashflowSummary derives the cashflow overview for the month containing now.
func CashflowSummary(snapshot models.Snapshot, expenses Expenses, now time.Time) Cashflow {
	sales := TotalRevenue(snapshot.Bills)
	balance := CashBalance(snapshot.Profile.OpeningBalance, sales, expenses.CashflowExpenses())
	monthly := MonthlySales(snapshot.Bills, now)
	return Cashflow{
		CashBalance:        balance,
		DisplayCashBalance: DisplayCashBalance(balance),
		TotalSales:         sales,
		InventoryValue:     InventoryValue(snapshot.Inventory),
		PendingPayments:    expenses.PendingPayments,
		MonthlySales:       monthly,
		DailyAverage:       DailyAverageForMonth(monthly, now),
	}
}
