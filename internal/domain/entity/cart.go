package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// taxPlaces is the number of decimal places tax is rounded to.
const taxPlaces = 2

// Cart is the aggregate root for a user's pending purchase. NumItems, CartTotal,
// Tax and OrderTotal are a projection of Items and are never edited directly.
// Shipping is the configured rate; ShippingCharge is what the totals include.
type Cart struct {
	ID         uint64          `json:"-"`
	UID        uuid.UUID       `json:"id"`
	UserID     string          `json:"user_id"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	Shipping   decimal.Decimal `json:"shipping_rate"`
	NumItems   int             `json:"num_items"`
	CartTotal  decimal.Decimal `json:"cart_total"`
	Tax        decimal.Decimal `json:"tax"`
	OrderTotal decimal.Decimal `json:"order_total"`
	Items      []*CartItem     `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CartItem is one line of a cart. At most one exists per (cart, product).
type CartItem struct {
	ID        uint64    `json:"-"`
	UID       uuid.UUID `json:"id"`
	CartID    uint64    `json:"-"`
	ProductID uint64    `json:"-"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartTotals is the derived projection of a cart's line items.
type CartTotals struct {
	NumItems int
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals aggregates items in the order given. Items whose product is not
// loaded contribute nothing. Shipping is charged only for a non-empty subtotal.
func ComputeTotals(items []*CartItem, taxRate, shipping decimal.Decimal) CartTotals {
	totals := CartTotals{
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Shipping: decimal.Zero,
		Total:    decimal.Zero,
	}

	for _, item := range items {
		if item == nil || item.Product == nil {
			continue
		}
		totals.NumItems += item.Quantity
		line := decimal.NewFromInt(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		totals.Subtotal = totals.Subtotal.Add(line)
	}

	totals.Tax = totals.Subtotal.Mul(taxRate).Round(taxPlaces)
	if totals.Subtotal.IsPositive() {
		totals.Shipping = shipping
	}
	totals.Total = totals.Subtotal.Add(totals.Tax).Add(totals.Shipping)

	return totals
}

// Totals recomputes the projection from the cart's current items.
func (c *Cart) Totals() CartTotals {
	return ComputeTotals(c.Items, c.TaxRate, c.Shipping)
}

// ApplyTotals writes a projection onto the cart's derived fields.
func (c *Cart) ApplyTotals(t CartTotals) {
	c.NumItems = t.NumItems
	c.CartTotal = t.Subtotal
	c.Tax = t.Tax
	c.OrderTotal = t.Total
}

// ShippingCharge is the shipping included in OrderTotal, zero while the cart is empty.
func (c *Cart) ShippingCharge() decimal.Decimal {
	return c.OrderTotal.Sub(c.CartTotal).Sub(c.Tax)
}

// IsEmpty reports whether the cart has no billable items.
func (c *Cart) IsEmpty() bool {
	return c.NumItems == 0
}
