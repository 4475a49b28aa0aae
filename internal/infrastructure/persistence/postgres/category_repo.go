package postgres

import (
	"context"
	"fmt"

	"github.com/finwallet/installment-service/pkg/postgres"
)

// CategoryRepo implements port.CategoryRepository. Categories are owned by
// the wider wallet application; this service only checks existence.
type CategoryRepo struct {
	q postgres.Querier
}

// NewCategoryRepo creates a new PostgreSQL-backed category repository.
func NewCategoryRepo(q postgres.Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Exists reports whether the user-defined category exists and belongs to the
// owner.
func (r *CategoryRepo) Exists(ctx context.Context, ownerID string, categoryID int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND owner_id = $2)`,
		categoryID, ownerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}
