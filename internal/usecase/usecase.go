package usecase

import (
	"context"

	"github.com/DRSN-tech/watch-store/internal/domain"
)

type ProductUC interface {
	InsertProduct(ctx context.Context, req *InsertProductReq) (*ProductResponse, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductsByBrandName(ctx context.Context, brandName string) ([]domain.Product, error)
	SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error)
	FilterProductsByGender(ctx context.Context, gender string) ([]domain.Product, error)
}

type AccessoryUC interface {
	InsertAccessory(ctx context.Context, req *InsertAccessoryReq) (*AccessoryResponse, error)
	ListAccessories(ctx context.Context) ([]domain.Accessory, error)
	SearchAccessoriesByName(ctx context.Context, name string) ([]domain.Accessory, error)
	FilterAccessoriesByColor(ctx context.Context, color string) ([]domain.Accessory, error)
}

type CatalogUC interface {
	CreateBrand(ctx context.Context, name string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type LikeUC interface {
	InsertLike(ctx context.Context, userID, productID int64, likeCount int32) (*domain.Like, error)
}
