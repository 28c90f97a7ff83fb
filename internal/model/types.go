// Package model defines domain types used by the service.
package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Book represents one catalog item.
type Book struct {
	ID     int             `json:"id"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
	Stock  int             `json:"stock"`
}

// bookJSON is the wire form of Book with the price as a bare JSON number.
type bookJSON struct {
	ID     int         `json:"id"`
	Title  string      `json:"title"`
	Author string      `json:"author"`
	Price  json.Number `json:"price"`
	Stock  int         `json:"stock"`
}

// MarshalJSON writes the price unquoted. Decoding needs no counterpart
// because decimal.Decimal accepts both quoted and bare numbers.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  json.Number(b.Price.String()),
		Stock:  b.Stock,
	})
}

// Filter narrows a catalog listing. Zero values disable a criterion.
type Filter struct {
	Author   string
	MinPrice *decimal.Decimal
}
