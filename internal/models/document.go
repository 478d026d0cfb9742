package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the JSONB shape of a row stored in documents.line_items.
type LineItem struct {
	ProductName    string          `json:"productName"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

// Document is a row of the documents table. Sales invoices and purchase
// orders share the table and are told apart by Kind.
type Document struct {
	DocumentID        string          `db:"document_id"`
	UserID            string          `db:"user_id"`
	Kind              string          `db:"kind"`
	NumberPrefix      string          `db:"number_prefix"`
	NumberSuffix      string          `db:"number_suffix"`
	DocumentNumber    string          `db:"document_number"`
	CounterpartyName  string          `db:"counterparty_name"`
	CounterpartyEmail *string         `db:"counterparty_email"`
	IssueDate         time.Time       `db:"issue_date"`
	DueDate           *time.Time      `db:"due_date"`
	LineItems         []LineItem      `db:"line_items"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	TaxTotal          decimal.Decimal `db:"tax_total"`
	GrandTotal        decimal.Decimal `db:"grand_total"`
	PaymentMode       string          `db:"payment_mode"`
	PaidAmount        decimal.Decimal `db:"paid_amount"`
	IsMarkedFullyPaid bool            `db:"is_marked_fully_paid"`
	PaymentStatus     string          `db:"payment_status"`
	RemainingAmount   decimal.Decimal `db:"remaining_amount"`
	LastPaymentDate   *time.Time      `db:"last_payment_date"`
	AuditFields
}
