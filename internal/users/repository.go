package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dporg/internal/store/csvx"
)

// Repository describes the append-only credential store.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Append(ctx context.Context, user User) error
}

var header = []string{"username", "password"}

type CSVRepository struct {
	store *csvx.Store
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{store: csvx.New(path, header)}
}

func (r *CSVRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.store.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var result []User
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		result = append(result, User{Username: row[0], PasswordHash: row[1]})
	}
	return result, nil
}

func (r *CSVRepository) Append(ctx context.Context, user User) error {
	if err := r.store.Append([]string{user.Username, user.PasswordHash}); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}
