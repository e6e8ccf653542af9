package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
)

// ReferenceValidator проверяет, что бренд и категория существуют, до любой записи.
type ReferenceValidator struct {
	brandRepo    BrandRepository
	categoryRepo CategoryRepository
}

func NewReferenceValidator(brandRepo BrandRepository, categoryRepo CategoryRepository) *ReferenceValidator {
	return &ReferenceValidator{
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

// Validate сначала проверяет бренд, затем категорию.
// Отсутствие записи возвращается как e.ErrBrandNotExist / e.ErrCategoryNotExist,
// прочие ошибки хранилища пробрасываются.
func (v *ReferenceValidator) Validate(ctx context.Context, brandID, categoryID int64) (*domain.Brand, *domain.Category, error) {
	const op = "ReferenceValidator.Validate"

	brand, err := v.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, nil, e.Wrap(op, e.ErrBrandNotExist)
		}
		return nil, nil, e.Wrap(op, err)
	}

	category, err := v.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, nil, e.Wrap(op, e.ErrCategoryNotExist)
		}
		return nil, nil, e.Wrap(op, err)
	}

	return brand, category, nil
}
