package queries_test

import (
	"testing"
	"time"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountStaleCheckingOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewCountStaleCheckingOrdersQuery(24 * time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, query.OlderThan())
}

func TestNewCountStaleCheckingOrdersQuery_NonPositiveThreshold(t *testing.T) {
	for _, olderThan := range []time.Duration{0, -time.Hour} {
		_, err := queries.NewCountStaleCheckingOrdersQuery(olderThan)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestCountStaleCheckingOrdersQuery_Validate_ZeroValue(t *testing.T) {
	err := queries.CountStaleCheckingOrdersQuery{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCountStaleCheckingOrdersQueryIsNotConstructed)
}
