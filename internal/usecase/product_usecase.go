package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
)

const (
	productsFolder   = "products"
	cacheFillTimeout = 500 * time.Millisecond
)

// ProductUseCase реализует создание часов и поиск по каталогу.
type ProductUseCase struct {
	workflow         *CreationWorkflow
	productRepo      ProductRepository
	productImageRepo ProductImageRepository
	brandRepo        BrandRepository
	cacheRepo        CacheRepository
	logger           logger.Logger
}

func NewProductUC(
	workflow *CreationWorkflow,
	productRepo ProductRepository,
	productImageRepo ProductImageRepository,
	brandRepo BrandRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		workflow:         workflow,
		productRepo:      productRepo,
		productImageRepo: productImageRepo,
		brandRepo:        brandRepo,
		cacheRepo:        cacheRepo,
		logger:           logger,
	}
}

// InsertProduct создаёт товар и его изображение.
func (p *ProductUseCase) InsertProduct(ctx context.Context, req *InsertProductReq) (*ProductResponse, error) {
	const op = "ProductUseCase.InsertProduct"

	var (
		product *domain.Product
		image   *domain.ProductImage
	)

	task := &creationTask{
		name:       req.Name,
		folder:     productsFolder,
		eventType:  ProductCreated,
		brandID:    req.BrandID,
		categoryID: req.CategoryID,
		file:       req.File,
		savePrimary: func(ctx context.Context) (int64, error) {
			saved, err := p.productRepo.Create(ctx, domain.NewProduct(
				req.Name, req.Description, req.Gender, req.Price, req.BrandID, req.CategoryID,
			))
			if err != nil {
				return 0, err
			}
			product = saved
			return saved.ID, nil
		},
		saveImage: func(ctx context.Context, ownerID int64, uploaded *UploadImageRes) error {
			saved, err := p.productImageRepo.Create(ctx, domain.NewProductImage(ownerID, uploaded.URL, uploaded.Key))
			if err != nil {
				return err
			}
			image = saved
			return nil
		},
		eventPayload: func() map[string]any {
			return map[string]any{
				"id":          product.ID,
				"name":        product.Name,
				"gender":      product.Gender,
				"price":       product.Price,
				"brand_id":    product.BrandID,
				"category_id": product.CategoryID,
				"image_url":   image.ImgURL,
			}
		},
		invalidate: func(ctx context.Context) {
			if err := p.cacheRepo.DeleteProducts(ctx); err != nil {
				p.logger.Warnf("Failed to invalidate products cache: %v", e.Wrap(op, err))
			}
		},
	}

	if err := p.workflow.Run(ctx, task); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductResponse{Product: product, Image: image}, nil
}

// ListProducts возвращает все товары со связями, сначала пробуя кэш.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	cached, err := p.cacheRepo.GetProducts(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, e.ErrCacheMiss) {
		p.logger.Warnf("Failed to read products cache: %v", e.Wrap(op, err))
	}

	// Версия читается до запроса в базу: если список сбросят раньше фоновой записи,
	// устаревший снимок в кэш не попадёт.
	version, versionErr := p.cacheRepo.ProductsVersion(ctx)
	if versionErr != nil {
		p.logger.Warnf("Failed to read products cache version: %v", e.Wrap(op, versionErr))
	}

	products, err := p.productRepo.ListWithRelations(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	products = nonNil(products)

	if versionErr != nil {
		return products, nil
	}

	// Фоновое добавление списка в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheFillTimeout)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, version, products); err != nil {
			if errors.Is(err, e.ErrCacheStale) {
				p.logger.Debugf("products list changed while caching, skipped")
				return
			}
			p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
		}
	}()

	return products, nil
}

// GetProductsByBrandName находит первый бренд по подстроке имени (без учёта регистра)
// и возвращает его товары.
func (p *ProductUseCase) GetProductsByBrandName(ctx context.Context, brandName string) ([]domain.Product, error) {
	const op = "ProductUseCase.GetProductsByBrandName"

	brand, err := p.brandRepo.FindFirstByName(ctx, brandName)
	if err != nil {
		if errors.Is(err, e.ErrRecordNotFound) {
			return nil, e.Wrap(op, e.ErrBrandNotExist)
		}
		return nil, e.Wrap(op, err)
	}

	products, err := p.productRepo.FindByBrandID(ctx, brand.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return nonNil(products), nil
}

// SearchProductsByName ищет товары по подстроке имени.
// Пустой результат ошибкой не считается.
func (p *ProductUseCase) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	const op = "ProductUseCase.SearchProductsByName"

	products, err := p.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return nonNil(products), nil
}

// FilterProductsByGender ищет товары по подстроке в поле gender.
func (p *ProductUseCase) FilterProductsByGender(ctx context.Context, gender string) ([]domain.Product, error) {
	const op = "ProductUseCase.FilterProductsByGender"

	products, err := p.productRepo.FilterByGender(ctx, gender)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return nonNil(products), nil
}

// nonNil гарантирует, что пустой результат сериализуется как [], а не null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
