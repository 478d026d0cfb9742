package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentSums aggregates one document collection over a period.
type DocumentSums struct {
	GrandTotal decimal.Decimal
	Remaining  decimal.Decimal
	Count      int64
}

// MonthlyAmount is a total for one calendar month (1-12).
type MonthlyAmount struct {
	Month  int
	Amount decimal.Decimal
}

// MonthlyTotals is one row of the dashboard's month chart.
type MonthlyTotals struct {
	Month     time.Month      `json:"month"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Expenses  decimal.Decimal `json:"expenses"`
}

// CategoryAmount is the expense total of one category.
type CategoryAmount struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DashboardSummary is the overview of a user's books for a period.
type DashboardSummary struct {
	From               *time.Time       `json:"from,omitempty"`
	To                 *time.Time       `json:"to,omitempty"`
	TotalSales         decimal.Decimal  `json:"totalSales"`
	TotalPurchases     decimal.Decimal  `json:"totalPurchases"`
	TotalExpenses      decimal.Decimal  `json:"totalExpenses"`
	Profit             decimal.Decimal  `json:"profit"`
	Receivables        decimal.Decimal  `json:"receivables"`
	Payables           decimal.Decimal  `json:"payables"`
	SalesCount         int64            `json:"salesCount"`
	PurchaseCount      int64            `json:"purchaseCount"`
	Monthly            []MonthlyTotals  `json:"monthly"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
}
