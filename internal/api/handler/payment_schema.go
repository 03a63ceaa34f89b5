package handler

// looseNumber captures the raw text of any scalar JSON value. POS clients in
// the field send prices as numbers, numeric strings, and occasionally junk;
// reconciliation decides what to drop, so binding must never fail on a bad
// number.
type looseNumber string

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*n = looseNumber(s)
	return nil
}

// chargeItemRequest is a client-submitted line item. Price and quantity keep
// their raw wire text; entries that fail to parse are dropped during
// reconciliation instead of failing the whole request.
type chargeItemRequest struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    looseNumber `json:"price"`
	Quantity looseNumber `json:"quantity"`
}

type customerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type createChargeRequest struct {
	OrderID       string              `json:"order_id"         validate:"required"`
	Items         []chargeItemRequest `json:"item_details"     validate:"required,min=1"`
	Customer      *customerRequest    `json:"customer_details"`
	DiscountTotal int64               `json:"discount_total"   validate:"gte=0"`
	// GrossAmount is accepted for wire compatibility with older clients and
	// deliberately ignored: the reconciled server total is what gets
	// authorized, never a client-declared amount.
	GrossAmount looseNumber `json:"gross_amount,omitempty"`
}

type chargeResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	ServerTotal int64  `json:"server_total"`
}
