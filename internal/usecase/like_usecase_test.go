package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeUseCase_InsertLike(t *testing.T) {
	env := newEnv(false)
	user := env.store.addUser("alice")
	product := env.store.addProduct(domain.Product{Name: "Submariner", BrandID: env.brand.ID, CategoryID: env.category.ID})

	testCases := []struct {
		name        string
		userID      int64
		productID   int64
		count       int32
		expectError error
	}{
		{"negative count", user.ID, product.ID, -1, e.ErrNegativeLikeCount},
		{"unknown user", 12345, product.ID, 1, e.ErrUserNotExist},
		{"unknown user and product", 12345, 54321, 1, e.ErrUserNotExist},
		{"unknown product", user.ID, 54321, 1, e.ErrProductNotExist},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			like, err := env.likes.InsertLike(context.Background(), tc.userID, tc.productID, tc.count)

			require.ErrorIs(t, err, tc.expectError)
			assert.Nil(t, like)
		})
	}
}

func TestLikeUseCase_UpsertOverwritesCount(t *testing.T) {
	env := newEnv(false)
	user := env.store.addUser("bob")
	product := env.store.addProduct(domain.Product{Name: "Daytona", BrandID: env.brand.ID, CategoryID: env.category.ID})
	ctx := context.Background()

	first, err := env.likes.InsertLike(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), first.LikeCount)
	assert.Nil(t, first.UpdatedAt)

	second, err := env.likes.InsertLike(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int32(0), second.LikeCount)
	assert.NotNil(t, second.UpdatedAt)
	assert.Len(t, env.store.likes, 1)
}
