package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
)

// CatalogUseCase управляет справочниками брендов и категорий.
type CatalogUseCase struct {
	brandRepo    BrandRepository
	categoryRepo CategoryRepository
}

func NewCatalogUC(brandRepo BrandRepository, categoryRepo CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

func (c *CatalogUseCase) CreateBrand(ctx context.Context, name string) (*domain.Brand, error) {
	const op = "CatalogUseCase.CreateBrand"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrBrandNameRequired)
	}

	brand, err := c.brandRepo.Create(ctx, domain.NewBrand(name))
	if err != nil {
		if errors.Is(err, e.ErrDuplicate) {
			return nil, e.Wrap(op, e.ErrBrandExists)
		}
		return nil, e.Wrap(op, err)
	}

	return brand, nil
}

func (c *CatalogUseCase) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := c.brandRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap("CatalogUseCase.ListBrands", err)
	}

	return nonNil(brands), nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameMissing)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		if errors.Is(err, e.ErrDuplicate) {
			return nil, e.Wrap(op, e.ErrCategoryExists)
		}
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap("CatalogUseCase.ListCategories", err)
	}

	return nonNil(categories), nil
}
