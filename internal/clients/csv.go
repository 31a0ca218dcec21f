// Package clients persists client records in a flat comma-delimited store
// with columns name,email,date,files. The files column holds all attached
// file paths joined by a reserved separator.
package clients

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dporg/internal/common"
	"github.com/dmitrijs2005/dporg/internal/store/csvx"
)

var header = []string{"name", "email", "date", "files"}

type CSVRepository struct {
	store *csvx.Store
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{store: csvx.New(path, header)}
}

func (r *CSVRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.store.List()
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	var result []Record
	for _, row := range rows {
		if rec, ok := fromRow(row); ok {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *CSVRepository) Append(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.Date == "" {
		rec.Date = now().Format(DateLayout)
	}
	if err := r.store.Append(rec.toRow()); err != nil {
		return fmt.Errorf("append client: %w", err)
	}
	return nil
}

func (r *CSVRepository) Update(ctx context.Context, key Key, updated Record) error {
	if err := updated.Validate(); err != nil {
		return err
	}

	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].Key() == key {
			// only the first match is edited; the creation date stays
			updated.Date = records[i].Date
			records[i] = updated
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("update client %s (%s): %w", key.Name, key.Email, common.ErrorNotFound)
	}

	return r.rewrite(records)
}

func (r *CSVRepository) Delete(ctx context.Context, name, email string) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.Name != name || rec.Email != email {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		// nothing matched (or the store does not exist yet)
		return nil
	}

	return r.rewrite(kept)
}

func (r *CSVRepository) rewrite(records []Record) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toRow())
	}
	if err := r.store.Rewrite(rows); err != nil {
		return fmt.Errorf("rewrite clients: %w", err)
	}
	return nil
}
