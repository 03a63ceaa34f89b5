package service

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

func item(id string, price, qty string) ports.ChargeItemInput {
	return ports.ChargeItemInput{
		ID:       id,
		Name:     id,
		Price:    json.Number(price),
		Quantity: json.Number(qty),
	}
}

func TestReconcile_SumsValidItems(t *testing.T) {
	kept, total, skipped := reconcile([]ports.ChargeItemInput{
		item("A", "10000", "2"),
		item("B", "2500", "4"),
	}, 0)

	if total != 30000 {
		t.Errorf("expected total 30000, got %d", total)
	}
	if len(kept) != 2 {
		t.Errorf("expected 2 kept items, got %d", len(kept))
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
}

func TestReconcile_NegativePriceLineReducesTotal(t *testing.T) {
	_, total, skipped := reconcile([]ports.ChargeItemInput{
		item("A", "10000", "2"),
		item("VOUCHER", "-5000", "1"),
	}, 0)

	if total != 15000 {
		t.Errorf("expected total 15000, got %d", total)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
}

func TestReconcile_SkipsUnparseableNumbers(t *testing.T) {
	kept, total, skipped := reconcile([]ports.ChargeItemInput{
		item("A", "abc", "1"),
		item("B", "10000", "two"),
		item("C", "10000", "1"),
	}, 0)

	if skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", skipped)
	}
	if total != 10000 {
		t.Errorf("expected total 10000, got %d", total)
	}
	if len(kept) != 1 || kept[0].ID != "C" {
		t.Errorf("expected only item C kept, got %+v", kept)
	}
}

func TestReconcile_SkipsFractionalPrice(t *testing.T) {
	_, total, skipped := reconcile([]ports.ChargeItemInput{
		item("A", "99.99", "1"),
	}, 0)

	if skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", skipped)
	}
	if total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
}

func TestReconcile_SkipsOutOfBoundsQuantity(t *testing.T) {
	for _, qty := range []string{"0", "-1", strconv.FormatInt(domain.MaxItemQuantity+1, 10)} {
		_, total, skipped := reconcile([]ports.ChargeItemInput{
			item("A", "10000", qty),
		}, 0)
		if skipped != 1 {
			t.Errorf("qty=%s: expected 1 skipped, got %d", qty, skipped)
		}
		if total != 0 {
			t.Errorf("qty=%s: expected total 0, got %d", qty, total)
		}
	}
}

func TestReconcile_SkipsOutOfBoundsPrice(t *testing.T) {
	overPrice := strconv.FormatInt(domain.MaxItemPrice+1, 10)
	for _, price := range []string{overPrice, "-" + overPrice} {
		_, _, skipped := reconcile([]ports.ChargeItemInput{
			item("A", price, "1"),
		}, 0)
		if skipped != 1 {
			t.Errorf("price=%s: expected 1 skipped, got %d", price, skipped)
		}
	}
	// Exactly at the bound is still valid.
	_, total, skipped := reconcile([]ports.ChargeItemInput{
		item("A", strconv.FormatInt(domain.MaxItemPrice, 10), "1"),
	}, 0)
	if skipped != 0 || total != domain.MaxItemPrice {
		t.Errorf("boundary price: skipped=%d total=%d", skipped, total)
	}
}

func TestReconcile_ClampsNegativeTotalToZero(t *testing.T) {
	_, total, _ := reconcile([]ports.ChargeItemInput{
		item("A", "10000", "1"),
		item("REFUND", "-20000", "1"),
	}, 0)

	if total != 0 {
		t.Errorf("expected total clamped to 0, got %d", total)
	}
}

func TestReconcile_AppendsDiscountLineItem(t *testing.T) {
	kept, total, _ := reconcile([]ports.ChargeItemInput{
		item("A", "10000", "2"),
	}, 3000)

	if total != 17000 {
		t.Errorf("expected total 17000, got %d", total)
	}
	last := kept[len(kept)-1]
	if last.ID != discountItemID || last.Price != -3000 || last.Quantity != 1 {
		t.Errorf("unexpected discount item: %+v", last)
	}

	// Item-level sum must equal the reconciled total.
	var sum int64
	for _, it := range kept {
		sum += it.Price * it.Quantity
	}
	if sum != total {
		t.Errorf("item sum %d != total %d", sum, total)
	}
}

func TestReconcile_CapsDiscountAtSubtotal(t *testing.T) {
	kept, total, _ := reconcile([]ports.ChargeItemInput{
		item("A", "5000", "1"),
	}, 99999)

	if total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
	last := kept[len(kept)-1]
	if last.Price != -5000 {
		t.Errorf("expected discount capped at -5000, got %d", last.Price)
	}
}

func TestReconcile_ZeroSubtotalDropsDiscountItem(t *testing.T) {
	kept, total, _ := reconcile([]ports.ChargeItemInput{
		item("A", "0", "1"),
	}, 1000)

	if total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
	for _, it := range kept {
		if it.ID == discountItemID {
			t.Errorf("no discount item expected for zero subtotal, got %+v", kept)
		}
	}
}

func TestReconcile_EmptyNameFallsBackToID(t *testing.T) {
	kept, _, _ := reconcile([]ports.ChargeItemInput{
		{ID: "SKU-1", Price: json.Number("100"), Quantity: json.Number("1")},
	}, 0)

	if kept[0].Name != "SKU-1" {
		t.Errorf("expected name fallback to ID, got %q", kept[0].Name)
	}
}
