// Package checkout turns a cart into the WhatsApp order message. The line
// format is part of the contract with the wa.me deep link and must not drift.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/velu-medicals/storefront/internal/cart"
)

// Message formats the order body: intro, one numbered line per entry with a
// two-decimal subtotal, a two-decimal total line, and a closing line. Lines
// follow cart order.
func Message(storeName string, entries []cart.Entry) string {
	total := decimal.Zero
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, I need these products:\n", storeName)
	for i, e := range entries {
		sub := e.Subtotal()
		total = total.Add(sub)
		fmt.Fprintf(&b, "\n%d. %s (Qty: %d) - $%s", i+1, e.Name, e.Quantity, sub.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n\nTotal Order Value: $%s", total.StringFixed(2))
	b.WriteString("\n\nPlease let me know when these will be ready.")
	return b.String()
}

// Link builds the wa.me deep link carrying the message body, URL-encoded.
func Link(phone, body string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(body))
}
