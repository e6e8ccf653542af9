package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
)

const accessoriesFolder = "accessories"

// AccessoryUseCase реализует создание аксессуаров и фильтры по ним.
type AccessoryUseCase struct {
	workflow           *CreationWorkflow
	accessoryRepo      AccessoryRepository
	accessoryImageRepo AccessoryImageRepository
	cacheRepo          CacheRepository
	logger             logger.Logger
}

func NewAccessoryUC(
	workflow *CreationWorkflow,
	accessoryRepo AccessoryRepository,
	accessoryImageRepo AccessoryImageRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *AccessoryUseCase {
	return &AccessoryUseCase{
		workflow:           workflow,
		accessoryRepo:      accessoryRepo,
		accessoryImageRepo: accessoryImageRepo,
		cacheRepo:          cacheRepo,
		logger:             logger,
	}
}

// InsertAccessory создаёт аксессуар и его изображение в том же порядке шагов, что и InsertProduct.
func (a *AccessoryUseCase) InsertAccessory(ctx context.Context, req *InsertAccessoryReq) (*AccessoryResponse, error) {
	const op = "AccessoryUseCase.InsertAccessory"

	var (
		accessory *domain.Accessory
		image     *domain.AccessoryImage
	)

	task := &creationTask{
		name:       req.Name,
		folder:     accessoriesFolder,
		eventType:  AccessoryCreated,
		brandID:    req.BrandID,
		categoryID: req.CategoryID,
		file:       req.File,
		savePrimary: func(ctx context.Context) (int64, error) {
			saved, err := a.accessoryRepo.Create(ctx, domain.NewAccessory(
				req.Name, req.Description, req.Color, req.Price, req.BrandID, req.CategoryID,
			))
			if err != nil {
				return 0, err
			}
			accessory = saved
			return saved.ID, nil
		},
		saveImage: func(ctx context.Context, ownerID int64, uploaded *UploadImageRes) error {
			saved, err := a.accessoryImageRepo.Create(ctx, domain.NewAccessoryImage(ownerID, uploaded.URL, uploaded.Key))
			if err != nil {
				return err
			}
			image = saved
			return nil
		},
		eventPayload: func() map[string]any {
			return map[string]any{
				"id":          accessory.ID,
				"name":        accessory.Name,
				"color":       accessory.Color,
				"price":       accessory.Price,
				"brand_id":    accessory.BrandID,
				"category_id": accessory.CategoryID,
				"image_url":   image.ImgURL,
			}
		},
		invalidate: func(ctx context.Context) {
			if err := a.cacheRepo.DeleteAccessories(ctx); err != nil {
				a.logger.Warnf("Failed to invalidate accessories cache: %v", e.Wrap(op, err))
			}
		},
	}

	if err := a.workflow.Run(ctx, task); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AccessoryResponse{Accessory: accessory, Image: image}, nil
}

// ListAccessories возвращает все аксессуары с изображениями, сначала пробуя кэш.
func (a *AccessoryUseCase) ListAccessories(ctx context.Context) ([]domain.Accessory, error) {
	const op = "AccessoryUseCase.ListAccessories"

	cached, err := a.cacheRepo.GetAccessories(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, e.ErrCacheMiss) {
		a.logger.Warnf("Failed to read accessories cache: %v", e.Wrap(op, err))
	}

	version, versionErr := a.cacheRepo.AccessoriesVersion(ctx)
	if versionErr != nil {
		a.logger.Warnf("Failed to read accessories cache version: %v", e.Wrap(op, versionErr))
	}

	accessories, err := a.accessoryRepo.ListWithImages(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	accessories = nonNil(accessories)

	if versionErr != nil {
		return accessories, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheFillTimeout)
		defer cancel()

		if err := a.cacheRepo.SetAccessories(bgCtx, version, accessories); err != nil {
			if errors.Is(err, e.ErrCacheStale) {
				a.logger.Debugf("accessories list changed while caching, skipped")
				return
			}
			a.logger.Warnf("Failed to cache accessories in background: %v", e.Wrap(op, err))
		}
	}()

	return accessories, nil
}

// SearchAccessoriesByName ищет аксессуары по подстроке имени. Пустой результат ошибкой не считается.
func (a *AccessoryUseCase) SearchAccessoriesByName(ctx context.Context, name string) ([]domain.Accessory, error) {
	const op = "AccessoryUseCase.SearchAccessoriesByName"

	accessories, err := a.accessoryRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return nonNil(accessories), nil
}

// FilterAccessoriesByColor ищет по точному цвету. Любая ошибка хранилища
// заменяется на e.ErrFilterByColor, причина только логируется.
func (a *AccessoryUseCase) FilterAccessoriesByColor(ctx context.Context, color string) ([]domain.Accessory, error) {
	const op = "AccessoryUseCase.FilterAccessoriesByColor"

	accessories, err := a.accessoryRepo.FilterByColor(ctx, color)
	if err != nil {
		a.logger.Errorf(e.Wrap(op, err), "filter accessories by color %q", color)
		return nil, e.ErrFilterByColor
	}

	return nonNil(accessories), nil
}
