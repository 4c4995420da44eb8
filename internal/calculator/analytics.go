package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/photobill/internal/models"
)

// DefaultTopN is the number of best sellers reported when no count is given.
const DefaultTopN = 5

const day = 24 * time.Hour

// Health is the business health classification.
type Health string

const (
	HealthHealthy        Health = "Healthy"
	HealthNeedsAttention Health = "Needs attention"
)

// ProductSales is the cumulative quantity sold under one product name.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// TotalRevenue sums bill totals.
func TotalRevenue(bills []models.Bill) float64 {
	var sum float64
	for _, b := range bills {
		sum += b.Total
	}
	return sum
}

// NetProfit is total revenue minus monthlyExpenses.
func NetProfit(bills []models.Bill, monthlyExpenses float64) float64 {
	return TotalRevenue(bills) - monthlyExpenses
}

// BestSelling ranks product names by cumulative quantity sold.
//
// Items are grouped by name, not product id, so two products sharing a name
// are counted together. Ties keep the order in which names were first seen
// walking bills newest first. topN <= 0 selects DefaultTopN.
func BestSelling(bills []models.Bill, topN int) []ProductSales {
	if topN <= 0 {
		topN = DefaultTopN
	}

	index := make(map[string]int)
	var ranked []ProductSales
	for _, b := range bills {
		for _, item := range b.Items {
			i, ok := index[item.Name]
			if !ok {
				i = len(ranked)
				index[item.Name] = i
				ranked = append(ranked, ProductSales{Name: item.Name})
			}
			ranked[i].Quantity += item.Quantity
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	if ranked == nil {
		ranked = []ProductSales{}
	}
	return ranked
}

// AvgDailySales divides total revenue by the number of days between the
// oldest (last) and newest (first) bill, with a floor of one day.
func AvgDailySales(bills []models.Bill) float64 {
	revenue := TotalRevenue(bills)
	days := 1.0
	if len(bills) > 0 {
		newest := bills[0].CreatedAt
		oldest := bills[len(bills)-1].CreatedAt
		days = max(1, float64(newest.Sub(oldest))/float64(day))
	}
	return revenue / days
}

// BusinessHealth classifies net profit. Zero counts as healthy.
func BusinessHealth(netProfit float64) Health {
	if netProfit >= 0 {
		return HealthHealthy
	}
	return HealthNeedsAttention
}

// CashBalance is opening balance plus revenue minus expenses. It may be negative.
func CashBalance(openingBalance, totalRevenue, expenses float64) float64 {
	return openingBalance + totalRevenue - expenses
}

// DisplayCashBalance clamps a cash balance at zero for presentation.
func DisplayCashBalance(balance float64) float64 {
	return max(0, balance)
}

// InventoryValue is the stock value at current prices.
func InventoryValue(products []models.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += float64(p.Quantity) * p.Price
	}
	return sum
}

// MonthlySales sums bills created in the same calendar month and year as ref,
// evaluated in ref's location.
func MonthlySales(bills []models.Bill, ref time.Time) float64 {
	year, month, _ := ref.Date()
	loc := ref.Location()

	var sum float64
	for _, b := range bills {
		y, m, _ := b.CreatedAt.In(loc).Date()
		if y == year && m == month {
			sum += b.Total
		}
	}
	return sum
}

// DaysInMonth returns the number of days in ref's month.
func DaysInMonth(ref time.Time) int {
	year, month, _ := ref.Date()
	return time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

// DailyAverageForMonth spreads monthlySales over every day of ref's month.
func DailyAverageForMonth(monthlySales float64, ref time.Time) float64 {
	return monthlySales / float64(DaysInMonth(ref))
}

// BillTotal sums price × quantity over items.
func BillTotal(items []models.BillItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
