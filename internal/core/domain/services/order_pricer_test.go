package services_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id int64, nameUz, nameRu, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, nameUz, nameRu, decimal.RequireFromString(price), nil, 1)
	require.NoError(t, err)
	return &p
}

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("should freeze localized names and compute subtotals", func(t *testing.T) {
		products := []*product.Product{
			mustProduct(t, 1, "Olma", "Яблоко", "500.00"),
			mustProduct(t, 2, "Nok", "Груша", "19.99"),
		}
		lines := []services.RequestedLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		}

		items, err := pricer.Price(products, lines, kernel.LanguageRu)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Яблоко", items[0].Snapshot().Name())
		assert.Equal(t, "1000.00", items[0].Subtotal().StringFixed(2))
		assert.Equal(t, "Груша", items[1].Snapshot().Name())
		assert.Equal(t, "19.99", items[1].Subtotal().StringFixed(2))
	})

	t.Run("should default to uzbek names", func(t *testing.T) {
		products := []*product.Product{mustProduct(t, 1, "Olma", "Яблоко", "500.00")}
		lines := []services.RequestedLine{{ProductID: 1, Quantity: 1}}

		items, err := pricer.Price(products, lines, kernel.ParseLanguage(""))

		require.NoError(t, err)
		assert.Equal(t, "Olma", items[0].Snapshot().Name())
	})

	t.Run("should name the first missing product", func(t *testing.T) {
		products := []*product.Product{mustProduct(t, 1, "Olma", "Яблоко", "500.00")}
		lines := []services.RequestedLine{
			{ProductID: 1, Quantity: 1},
			{ProductID: 456, Quantity: 1},
			{ProductID: 789, Quantity: 1},
		}

		_, err := pricer.Price(products, lines, kernel.LanguageUz)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "456")
		assert.NotContains(t, err.Error(), "789")
	})

	t.Run("should reject empty line list", func(t *testing.T) {
		_, err := pricer.Price(nil, nil, kernel.LanguageUz)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidOrder)
	})

	t.Run("should reject non-positive quantity after resolution", func(t *testing.T) {
		products := []*product.Product{mustProduct(t, 1, "Olma", "Яблоко", "500.00")}
		lines := []services.RequestedLine{{ProductID: 1, Quantity: 0}}

		_, err := pricer.Price(products, lines, kernel.LanguageUz)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidOrder)
	})

	t.Run("missing product wins over invalid quantity of a later line", func(t *testing.T) {
		products := []*product.Product{mustProduct(t, 1, "Olma", "Яблоко", "500.00")}
		lines := []services.RequestedLine{
			{ProductID: 2, Quantity: 0},
			{ProductID: 1, Quantity: 0},
		}

		_, err := pricer.Price(products, lines, kernel.LanguageUz)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
