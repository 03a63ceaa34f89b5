package service

import (
	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// discountItemID identifies the synthetic line item appended when a discount
// arrives as a separate field. The gateway validates that item sums equal the
// declared gross amount, so the discount must appear at item level too.
const discountItemID = "DISCOUNT"

// reconcile recomputes the trusted monetary total from the submitted line
// items, discarding whatever total the client claimed.
//
// Policy (deliberate, not incidental): invalid items are dropped silently
// rather than failing the whole request — an item is invalid when its price
// or quantity does not parse as an integer, its quantity is outside
// [1, MaxItemQuantity], or its price magnitude exceeds MaxItemPrice. The
// final total is clamped at zero. A discount larger than the item subtotal is
// capped so the synthetic discount item keeps the item-level sum equal to the
// gross amount.
func reconcile(items []ports.ChargeItemInput, discount int64) (kept []domain.LineItem, total int64, skipped int) {
	for _, it := range items {
		price, err := it.Price.Int64()
		if err != nil {
			skipped++
			continue
		}
		qty, err := it.Quantity.Int64()
		if err != nil {
			skipped++
			continue
		}
		if qty <= 0 || qty > domain.MaxItemQuantity {
			skipped++
			continue
		}
		if price > domain.MaxItemPrice || price < -domain.MaxItemPrice {
			skipped++
			continue
		}

		name := it.Name
		if name == "" {
			name = it.ID
		}
		kept = append(kept, domain.LineItem{ID: it.ID, Name: name, Price: price, Quantity: qty})
		total += price * qty
	}

	if total < 0 {
		total = 0
	}

	if discount > 0 {
		if discount > total {
			discount = total
		}
		if discount > 0 {
			kept = append(kept, domain.LineItem{
				ID:       discountItemID,
				Name:     "Discount",
				Price:    -discount,
				Quantity: 1,
			})
			total -= discount
		}
	}

	return kept, total, skipped
}
