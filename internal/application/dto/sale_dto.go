package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de POST /api/sales. Name, Price y Cost son opcionales:
// si se omiten se toman del menú vigente.
type SaleItemRequest struct {
	MenuItemID string           `json:"menu_item_id"`
	Name       string           `json:"name,omitempty"`
	Quantity   int              `json:"quantity"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	Total         *decimal.Decimal  `json:"total,omitempty"` // Σ precio×cantidad si se omite
	PaymentMethod string            `json:"payment_method"`  // cash | mpesa
	MpesaCode     string            `json:"mpesa_code,omitempty"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	RecordedAt    *time.Time        `json:"timestamp,omitempty"`
}

// SaleItemResponse línea de una venta.
type SaleItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	RecordedAt    time.Time          `json:"timestamp"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	MpesaCode     string             `json:"mpesa_code,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
}

// RecordSaleResponse respuesta de POST /api/sales: la venta más las alertas que generó.
type RecordSaleResponse struct {
	Sale   SaleResponse    `json:"sale"`
	Alerts []AlertResponse `json:"alerts"`
}

// SaleListQuery query string de GET /api/sales.
type SaleListQuery struct {
	Search  string `query:"search"`
	Payment string `query:"payment"`
}
