// Package productrepo provides read access to the product catalog.
// The catalog is owned by an external service; this repository only reads
// the rows order creation needs to freeze product snapshots.
package productrepo

import (
	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID         int64           `gorm:"primaryKey"`
	NameUz     string          `gorm:"type:varchar(255)"`
	NameRu     string          `gorm:"type:varchar(255)"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)"`
	ImageURL   *string         `gorm:"type:varchar(500)"`
	CategoryID int64           `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product read model.
func toDomain(dto ProductDTO) (product.Product, error) {
	return product.NewProduct(
		dto.ID,
		dto.NameUz,
		dto.NameRu,
		dto.Price,
		dto.ImageURL,
		dto.CategoryID,
	)
}
