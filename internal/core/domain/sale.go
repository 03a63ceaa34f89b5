package domain

import "time"

// SaleItem is a line recorded on a completed sale.
type SaleItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// Sale is an entry in the sales ledger, written after a payment settles.
type Sale struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"order_id"`
	Items         []SaleItem `json:"items"`
	Total         int64      `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	CashierID     string     `json:"cashier_id"`
	CreatedAt     time.Time  `json:"created_at"`
}
