package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	MpesaCode     string          `json:"mpesa_code,omitempty"`
	RecordedAt    *time.Time      `json:"timestamp,omitempty"`
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	RecordedAt    time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	MpesaCode     string          `json:"mpesa_code,omitempty"`
}

// CategoryTotalDTO total de gastos de una categoría.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}
