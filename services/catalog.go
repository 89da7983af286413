package services

import (
	"fmt"
	"strings"

	"restaurant-telegram/models"

	"github.com/shopspring/decimal"
)

// Catalog is the fixed set of orderable items. Iteration order is the menu
// order and is stable, which matters for extraction: lines come out in
// catalog order, not input order.
type Catalog struct {
	items  []models.MenuItem
	byName map[string]decimal.Decimal
}

func NewCatalog(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items:  items,
		byName: make(map[string]decimal.Decimal, len(items)),
	}
	for _, it := range items {
		c.byName[it.Name] = it.Price
	}
	return c
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCatalog returns the Korean restaurant menu.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.MenuItem{
		{Name: "korean fried chicken", Price: d("12.99"), Category: models.CategoryMain},
		{Name: "bibimbap", Price: d("10.99"), Category: models.CategoryMain},
		{Name: "tteokbokki", Price: d("8.99"), Category: models.CategoryMain},
		{Name: "kimchi fried rice", Price: d("9.99"), Category: models.CategoryMain},
		{Name: "korean bbq platter", Price: d("15.99"), Category: models.CategoryMain},
		{Name: "banchan", Price: d("5.99"), Category: models.CategoryMain},
		{Name: "korean corn cheese", Price: d("6.99"), Category: models.CategoryMain},
		{Name: "hotteok", Price: d("4.99"), Category: models.CategoryMain},
		{Name: "korean spicy noodles", Price: d("7.99"), Category: models.CategoryMain},
		{Name: "sikhye", Price: d("3.99"), Category: models.CategoryMain},
		{Name: "bingsu", Price: d("6.99"), Category: models.CategoryDessert},
		{Name: "patbingsu", Price: d("7.99"), Category: models.CategoryDessert},
		{Name: "injeolmi toast", Price: d("5.99"), Category: models.CategoryDessert},
		{Name: "sundae", Price: d("4.99"), Category: models.CategoryDessert},
		{Name: "korean iced tea", Price: d("2.99"), Category: models.CategoryDrink},
		{Name: "korean lemonade", Price: d("2.99"), Category: models.CategoryDrink},
		{Name: "banana milk", Price: d("1.99"), Category: models.CategoryDrink},
		{Name: "kimchi", Price: d("2.99"), Category: models.CategorySide},
		{Name: "pickled radish", Price: d("1.99"), Category: models.CategorySide},
		{Name: "spicy cucumber salad", Price: d("3.99"), Category: models.CategorySide},
		{Name: "seaweed salad", Price: d("4.99"), Category: models.CategorySide},
		{Name: "fried tofu", Price: d("5.99"), Category: models.CategorySide},
		{Name: "korean pancakes", Price: d("6.99"), Category: models.CategorySide},
	})
}

// Lookup returns the unit price for a canonical item name.
func (c *Catalog) Lookup(name string) (decimal.Decimal, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Items returns the catalog entries in menu order. Callers must not mutate.
func (c *Catalog) Items() []models.MenuItem {
	return c.items
}

var categoryHeaders = []struct {
	category string
	header   string
}{
	{models.CategoryMain, "🍗 Korean Menu"},
	{models.CategoryDessert, "🍧 Dessert Menu"},
	{models.CategoryDrink, "🥤 Drinks"},
	{models.CategorySide, "🥢 Sides"},
}

// MenuText renders the static menu, grouped by category with a running
// item number, as the fallback when dynamic generation is unavailable.
func (c *Catalog) MenuText() string {
	var b strings.Builder
	n := 0
	for _, ch := range categoryHeaders {
		b.WriteString("\n" + ch.header + "\n")
		for _, it := range c.items {
			if it.Category != ch.category {
				continue
			}
			n++
			fmt.Fprintf(&b, "%d. %s - $%s\n", n, titleCase(it.Name), it.Price.StringFixed(2))
		}
	}
	return b.String()
}
