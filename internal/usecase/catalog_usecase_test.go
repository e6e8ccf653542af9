package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUseCase_CreateBrand(t *testing.T) {
	testCases := []struct {
		name        string
		brandName   string
		expectError error
	}{
		{"new brand", "  Tudor ", nil},
		{"empty name", "   ", e.ErrBrandNameRequired},
		{"duplicate", "Rolex", e.ErrBrandExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newEnv(false)

			brand, err := env.catalog.CreateBrand(context.Background(), tc.brandName)

			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
				assert.ErrorIs(t, err, e.ErrBadRequest)
				assert.Nil(t, brand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Tudor", brand.Name)
			assert.NotZero(t, brand.ID)
		})
	}
}

func TestCatalogUseCase_Categories(t *testing.T) {
	env := newEnv(false)
	ctx := context.Background()

	_, err := env.catalog.CreateCategory(ctx, "")
	require.ErrorIs(t, err, e.ErrCategoryNameMissing)

	created, err := env.catalog.CreateCategory(ctx, "Sport")
	require.NoError(t, err)

	_, err = env.catalog.CreateCategory(ctx, "Sport")
	require.ErrorIs(t, err, e.ErrCategoryExists)

	categories, err := env.catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, created.ID, categories[1].ID)

	brands, err := env.catalog.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 1)
}
