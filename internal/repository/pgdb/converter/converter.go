package converter

import (
	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/usecase"
)

// BrandConverter преобразует сущности Brand между domain и моделью PostgreSQL.
type BrandConverter interface {
	ToModel(entity *domain.Brand) *BrandModel
	ToEntity(model *BrandModel) *domain.Brand
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

type UserConverter interface {
	ToEntity(model *UserModel) *domain.User
}

// ProductConverter преобразует товар и его изображения.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ImageToModel(entity *domain.ProductImage) *ProductImageModel
	ImageToEntity(model *ProductImageModel) *domain.ProductImage
}

// AccessoryConverter преобразует аксессуар и его изображения.
type AccessoryConverter interface {
	ToModel(entity *domain.Accessory) *AccessoryModel
	ToEntity(model *AccessoryModel) *domain.Accessory
	ImageToModel(entity *domain.AccessoryImage) *AccessoryImageModel
	ImageToEntity(model *AccessoryImageModel) *domain.AccessoryImage
}

type LikeConverter interface {
	ToModel(entity *domain.Like) *LikeModel
	ToEntity(model *LikeModel) *domain.Like
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type BrandConverterImpl struct{}

func (BrandConverterImpl) ToModel(entity *domain.Brand) *BrandModel {
	if entity == nil {
		return nil
	}
	return &BrandModel{ID: entity.ID, Name: entity.Name, CreatedAt: entity.CreatedAt}
}

func (BrandConverterImpl) ToEntity(model *BrandModel) *domain.Brand {
	if model == nil {
		return nil
	}
	return &domain.Brand{ID: model.ID, Name: model.Name, CreatedAt: model.CreatedAt}
}

type CategoryConverterImpl struct{}

func (CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{ID: entity.ID, Name: entity.Name, CreatedAt: entity.CreatedAt}
}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{ID: model.ID, Name: model.Name, CreatedAt: model.CreatedAt}
}

type UserConverterImpl struct{}

func (UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	if model == nil {
		return nil
	}
	return &domain.User{ID: model.ID, Name: model.Name, Email: model.Email, CreatedAt: model.CreatedAt}
}

type ProductConverterImpl struct{}

func (ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Gender:      entity.Gender,
		Price:       entity.Price,
		BrandID:     entity.BrandID,
		CategoryID:  entity.CategoryID,
		CreatedAt:   entity.CreatedAt,
	}
}

func (ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Gender:      model.Gender,
		Price:       model.Price,
		BrandID:     model.BrandID,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
	}
}

func (ProductConverterImpl) ImageToModel(entity *domain.ProductImage) *ProductImageModel {
	if entity == nil {
		return nil
	}
	return &ProductImageModel{
		ID:        entity.ID,
		ImgURL:    entity.ImgURL,
		ObjectKey: entity.ObjectKey,
		ProductID: entity.ProductID,
		CreatedAt: entity.CreatedAt,
	}
}

func (ProductConverterImpl) ImageToEntity(model *ProductImageModel) *domain.ProductImage {
	if model == nil {
		return nil
	}
	return &domain.ProductImage{
		ID:        model.ID,
		ImgURL:    model.ImgURL,
		ObjectKey: model.ObjectKey,
		ProductID: model.ProductID,
		CreatedAt: model.CreatedAt,
	}
}

type AccessoryConverterImpl struct{}

func (AccessoryConverterImpl) ToModel(entity *domain.Accessory) *AccessoryModel {
	if entity == nil {
		return nil
	}
	return &AccessoryModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		Color:       entity.Color,
		Price:       entity.Price,
		BrandID:     entity.BrandID,
		CategoryID:  entity.CategoryID,
		CreatedAt:   entity.CreatedAt,
	}
}

func (AccessoryConverterImpl) ToEntity(model *AccessoryModel) *domain.Accessory {
	if model == nil {
		return nil
	}
	return &domain.Accessory{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Color:       model.Color,
		Price:       model.Price,
		BrandID:     model.BrandID,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
	}
}

func (AccessoryConverterImpl) ImageToModel(entity *domain.AccessoryImage) *AccessoryImageModel {
	if entity == nil {
		return nil
	}
	return &AccessoryImageModel{
		ID:          entity.ID,
		ImgURL:      entity.ImgURL,
		ObjectKey:   entity.ObjectKey,
		AccessoryID: entity.AccessoryID,
		CreatedAt:   entity.CreatedAt,
	}
}

func (AccessoryConverterImpl) ImageToEntity(model *AccessoryImageModel) *domain.AccessoryImage {
	if model == nil {
		return nil
	}
	return &domain.AccessoryImage{
		ID:          model.ID,
		ImgURL:      model.ImgURL,
		ObjectKey:   model.ObjectKey,
		AccessoryID: model.AccessoryID,
		CreatedAt:   model.CreatedAt,
	}
}

type LikeConverterImpl struct{}

func (LikeConverterImpl) ToModel(entity *domain.Like) *LikeModel {
	if entity == nil {
		return nil
	}
	return &LikeModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		ProductID: entity.ProductID,
		LikeCount: entity.LikeCount,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (LikeConverterImpl) ToEntity(model *LikeModel) *domain.Like {
	if model == nil {
		return nil
	}
	return &domain.Like{
		ID:        model.ID,
		UserID:    model.UserID,
		ProductID: model.ProductID,
		LikeCount: model.LikeCount,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func (OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		AggregateID: entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		AggregateID: model.AggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	if models == nil {
		return nil
	}
	res := make([]*usecase.OutboxEvent, len(models))
	for i, m := range models {
		res[i] = c.ToEntity(m)
	}
	return res
}
