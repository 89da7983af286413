package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	Name     string // canonical, lowercase
	Price    decimal.Decimal
	Category string // "main", "dessert", "drink", "side"
}

const (
	CategoryMain    = "main"
	CategoryDessert = "dessert"
	CategoryDrink   = "drink"
	CategorySide    = "side"
)
