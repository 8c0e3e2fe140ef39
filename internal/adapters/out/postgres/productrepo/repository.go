package productrepo

import (
	"context"

	"commerce/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
// Read-only: catalog writes belong to the external catalog service.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByIDs retrieves the products with the given identifiers in one query.
// Missing ids simply produce fewer results; the caller decides whether
// that is an error.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, nil
}
