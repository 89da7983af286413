package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OrderLine is one extracted item with its quantity and pricing. Lines are
// derived from the raw order text on demand and never stored, so the same
// text always yields the same lines.
type OrderLine struct {
	Name      string
	Qty       int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ExtractOrderLines parses free-text order input against the catalog.
//
// For every catalog entry, in catalog order, it searches the lowercased
// input for an optional quantity followed by the item name as a plain
// substring. A match does not consume its span, so entries whose names
// overlap ("kimchi" inside "kimchi fried rice") each produce their own
// line. That double counting mirrors the documented matching contract and
// is asserted by tests; changing it is a behavior change, not a fix.
// Each entry contributes at most one line. Unknown text is ignored, and an
// input with no matches yields an empty result, not an error.
func (c *Catalog) ExtractOrderLines(text string) ([]OrderLine, decimal.Decimal) {
	input := strings.ToLower(text)
	var lines []OrderLine
	total := decimal.Zero

	for _, it := range c.items {
		re := regexp.MustCompile(`(\d+)?\s*` + regexp.QuoteMeta(it.Name))
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		qty := 1
		if m[1] != "" {
			qty, _ = strconv.Atoi(m[1])
		}
		sub := it.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, OrderLine{
			Name:      it.Name,
			Qty:       qty,
			UnitPrice: it.Price,
			Subtotal:  sub,
		})
		total = total.Add(sub)
	}
	return lines, total
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
