// Package product holds the product form schemas, the typed product record
// they validate into, and the default submission behaviour.
package product

import (
	"context"
	"errors"
	"log/slog"

	v "github.com/Gobd/formvalidation"
)

// Product is a validated product record.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsFeatured  bool    `json:"is_featured"`
}

// ErrEmptyRecord is returned by Decode for a record that holds no fields.
var ErrEmptyRecord = errors.New("product: empty record")

// Decode converts a validated record into a Product.
func Decode(rec v.Record) (Product, error) {
	if rec.Len() == 0 {
		return Product{}, ErrEmptyRecord
	}
	return Product{
		Name:        rec.String(FieldName),
		Description: rec.String(FieldDescription),
		Price:       rec.Float(FieldPrice),
		Category:    rec.String(FieldCategory),
		IsFeatured:  rec.Bool(FieldIsFeatured),
	}, nil
}

// Candidate returns p's values as a candidate record.
func (p Product) Candidate() v.Candidate {
	return v.Candidate{
		FieldName:        p.Name,
		FieldDescription: p.Description,
		FieldPrice:       p.Price,
		FieldCategory:    p.Category,
		FieldIsFeatured:  p.IsFeatured,
	}
}

// LogSubmitter "submits" a product by logging it. Nothing is persisted.
type LogSubmitter struct {
	Logger *slog.Logger
}

// Submit decodes rec and logs it at info level.
func (s LogSubmitter) Submit(ctx context.Context, rec v.Record) error {
	p, err := Decode(rec)
	if err != nil {
		return err
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "product submitted",
		slog.String("name", p.Name),
		slog.String("description", p.Description),
		slog.Float64("price", p.Price),
		slog.String("category", p.Category),
		slog.Bool("is_featured", p.IsFeatured),
	)
	return nil
}
