package dto

import (
	"time"
)

// PeriodParams selects a reporting window. Range is one of all, thisMonth, lastMonth,
// thisYear, lastYear or custom; custom requires From and To.
type PeriodParams struct {
	Range string     `form:"range"`
	From  *time.Time `form:"from" time_format:"2006-01-02"`
	To    *time.Time `form:"to" time_format:"2006-01-02"`
}

// ReportResponse holds the rows of one collection for a period, newest first.
type ReportResponse struct {
	Kind      string             `json:"kind"`
	From      *time.Time         `json:"from,omitempty"`
	To        *time.Time         `json:"to,omitempty"`
	Count     int                `json:"count"`
	Documents []DocumentResponse `json:"documents,omitempty"`
	Expenses  []ExpenseResponse  `json:"expenses,omitempty"`
}
