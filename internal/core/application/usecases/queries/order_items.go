package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fetchOrderItems loads the frozen line items of one order and sums their
// stored subtotals into the order total.
func fetchOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemView, decimal.Decimal, error) {
	items := make([]OrderItemView, 0)
	total := decimal.NewFromInt(0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			price,
			image_url,
			category_id,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView

		err = rows.Scan(
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
			&item.CategoryID,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, decimal.Decimal{}, err
		}

		total = total.Add(item.Subtotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Decimal{}, err
	}

	return items, total, nil
}
