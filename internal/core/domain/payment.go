package domain

// PaymentStatus is the lifecycle state of a payment observed through the
// scan-to-pay handoff. A status is terminal once it leaves pending.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Terminal reports whether the status will no longer change.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentSuccess || s == PaymentFailed
}

// Reconciliation bounds. Items outside these limits are dropped, never summed.
const (
	// MaxItemPrice bounds the absolute unit price of a single line item.
	MaxItemPrice int64 = 100_000_000
	// MaxItemQuantity bounds the quantity of a single line item.
	MaxItemQuantity int64 = 100_000
)

// LineItem is a single priced entry of a transaction. Price is a signed
// integer amount in the smallest currency unit; negative prices are valid
// (discounts) as long as the magnitude is within MaxItemPrice.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// Customer identifies the paying customer towards the gateway.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DefaultCustomer is the placeholder substituted when a charge request omits
// customer details. Centralised here so every entry point defaults the same way.
func DefaultCustomer() Customer {
	return Customer{
		FirstName: "Customer",
		Email:     "customer@indocart.local",
		Phone:     "0800000000",
	}
}

// StatusEntry is the per-token record the PC side polls for. Result carries
// the opaque outcome record reported by the phone or the gateway callback;
// it is stored and returned verbatim.
type StatusEntry struct {
	Status PaymentStatus  `json:"status"`
	Result map[string]any `json:"result"`
}

// PendingEntry is what polling returns before any status has been written.
func PendingEntry() StatusEntry {
	return StatusEntry{Status: PaymentPending, Result: nil}
}
