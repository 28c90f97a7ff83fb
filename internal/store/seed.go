package store

import (
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/bookshop-service/internal/model"
)

// Seed returns a new copy of the built-in catalog records.
func Seed() []model.Book {
	return []model.Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Price: decimal.RequireFromString("12.99"), Stock: 45},
		{ID: 2, Title: "1984", Author: "George Orwell", Price: decimal.RequireFromString("14.99"), Stock: 32},
		{ID: 3, Title: "To Kill a Mockingbird", Author: "Harper Lee", Price: decimal.RequireFromString("13.50"), Stock: 28},
		{ID: 4, Title: "Pride and Prejudice", Author: "Jane Austen", Price: decimal.RequireFromString("11.99"), Stock: 52},
		{ID: 5, Title: "The Catcher in the Rye", Author: "J.D. Salinger", Price: decimal.RequireFromString("12.50"), Stock: 19},
	}
}
