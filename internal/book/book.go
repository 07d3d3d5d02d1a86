package book

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no row matches the requested code.
var ErrNotFound = errors.New("book not found")

func init() {
	// price goes out as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// Book is one row of the livros table.
type Book struct {
	Code   int64           `json:"code"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Stock  int             `json:"stock"`
	Price  decimal.Decimal `json:"price"`
	Sales  int             `json:"sales"`
}

// Input carries the mutable fields of a Book. Fields left out of the request stay
// nil and are written as NULL, leaving enforcement to the table's constraints.
type Input struct {
	Title  *string          `json:"title"`
	Author *string          `json:"author"`
	Stock  *int             `json:"stock"`
	Price  *decimal.Decimal `json:"price"`
	Sales  *int             `json:"sales"`
}
