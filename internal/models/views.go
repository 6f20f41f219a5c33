package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientSummary is a row of the client_summary database view.
// Revenue and outstanding balance are precomputed per client; the
// application only sums them, it never recomputes from raw rows.
type ClientSummary struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Contact            string     `json:"contact"`
	CreditLimit        float64    `json:"credit_limit"`
	CreditDays         int        `json:"credit_days"`
	TotalOrders        int64      `json:"total_orders"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	TotalRevenue       float64    `json:"total_revenue"`
	LastOrderDate      *time.Time `json:"last_order_date"`
}

// TableName maps ClientSummary onto the database view
func (ClientSummary) TableName() string { return "client_summary" }

// VendorPerformance is a row of the vendor_performance database view
type VendorPerformance struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Type          VendorType `json:"type"`
	TotalOrders   int64      `json:"total_orders"`
	TotalRevenue  float64    `json:"total_revenue"`
	AvgOrderValue *float64   `json:"avg_order_value"`
	TotalItems    int64      `json:"total_items"`
	TotalServices int64      `json:"total_services"`
}

// TableName maps VendorPerformance onto the database view
func (VendorPerformance) TableName() string { return "vendor_performance" }

// InventoryStatus is a row of the inventory_status database view
type InventoryStatus struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	VendorName   *string   `json:"vendor_name"`
	StockQty     int       `json:"stock_qty"`
	BuyPrice     float64   `json:"buy_price"`
	SellPrice    float64   `json:"sell_price"`
	ProfitMargin float64   `json:"profit_margin"`
	StockStatus  string    `json:"stock_status"`
}

// TableName maps InventoryStatus onto the database view
func (InventoryStatus) TableName() string { return "inventory_status" }
