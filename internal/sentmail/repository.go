// Package sentmail keeps the history of (client name, email address) pairs
// for which a delivery succeeded. The store feeds address suggestions, so
// the pair is unique within it.
package sentmail

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dporg/internal/store/csvx"
)

// Record is one remembered delivery address.
type Record struct {
	Name  string
	Email string
}

// Repository describes the sent-email history operations.
type Repository interface {
	// List returns all recorded pairs in insertion order.
	List(ctx context.Context) ([]Record, error)

	// Add records the pair unless it is already present.
	Add(ctx context.Context, name, email string) error

	// EmailsFor returns the remembered addresses for a client name, in
	// insertion order.
	EmailsFor(ctx context.Context, name string) ([]string, error)
}

var header = []string{"name", "email"}

type CSVRepository struct {
	store *csvx.Store
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{store: csvx.New(path, header)}
}

func (r *CSVRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.store.List()
	if err != nil {
		return nil, fmt.Errorf("list sent emails: %w", err)
	}

	var result []Record
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		result = append(result, Record{Name: row[0], Email: row[1]})
	}
	return result, nil
}

func (r *CSVRepository) Add(ctx context.Context, name, email string) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, rec := range existing {
		if rec.Name == name && rec.Email == email {
			return nil
		}
	}

	if err := r.store.Append([]string{name, email}); err != nil {
		return fmt.Errorf("record sent email: %w", err)
	}
	return nil
}

func (r *CSVRepository) EmailsFor(ctx context.Context, name string) ([]string, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var emails []string
	for _, rec := range records {
		if rec.Name == name {
			emails = append(emails, rec.Email)
		}
	}
	return emails, nil
}
