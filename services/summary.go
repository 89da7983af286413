package services

import (
	"fmt"
	"strings"

	"restaurant-telegram/models"
)

// BuildOrderSummary renders the priced order summary shown at the confirm
// step. Pure function of the session: it re-extracts lines from the raw
// order text every time. When nothing in the text matched the catalog the
// summary says so but still proceeds to confirmation.
func (c *Catalog) BuildOrderSummary(s *models.Session) string {
	lines, total := c.ExtractOrderLines(s.OrderText)

	var b strings.Builder
	b.WriteString("🧾 Order Summary\n")
	if len(lines) == 0 {
		b.WriteString("No valid items found.\n")
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "- 🛒 %d x %s - $%s\n", l.Qty, titleCase(l.Name), l.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "- 💵 Total: $%s\n", total.StringFixed(2))
	fmt.Fprintf(&b, "- 🚚 Type: %s\n", s.DeliveryType)
	if s.DeliveryType == "Delivery" {
		fmt.Fprintf(&b, "- 📍 Address: %s\n", s.Address)
	}
	fmt.Fprintf(&b, "- ☎️ Contact: %s\n", s.Contact)
	fmt.Fprintf(&b, "- 💳 Payment: %s\n", s.PaymentMethod)
	b.WriteString("\n👉 Type confirm to place your order.")
	return b.String()
}
