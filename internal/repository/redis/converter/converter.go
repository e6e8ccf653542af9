package converter

import "github.com/DRSN-tech/watch-store/internal/domain"

// CatalogConverter преобразует списки каталога между domain и моделями кэша.
type CatalogConverter interface {
	ProductsToRedis(entities []domain.Product) []ProductRedisModel
	ProductsToDomain(models []ProductRedisModel) []domain.Product
	AccessoriesToRedis(entities []domain.Accessory) []AccessoryRedisModel
	AccessoriesToDomain(models []AccessoryRedisModel) []domain.Accessory
}

type CatalogConverterImpl struct{}

func (CatalogConverterImpl) ProductsToRedis(entities []domain.Product) []ProductRedisModel {
	models := make([]ProductRedisModel, len(entities))
	for i, p := range entities {
		models[i] = ProductRedisModel{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Gender:      p.Gender,
			Price:       p.Price,
			BrandID:     p.BrandID,
			CategoryID:  p.CategoryID,
			CreatedAt:   p.CreatedAt,
			Brand:       brandToRedis(p.Brand),
			Images:      make([]ImageRedisModel, len(p.Images)),
		}
		if p.Category != nil {
			models[i].Category = &CategoryRedisModel{ID: p.Category.ID, Name: p.Category.Name, CreatedAt: p.Category.CreatedAt}
		}
		for j, img := range p.Images {
			models[i].Images[j] = ImageRedisModel{
				ID: img.ID, ImgURL: img.ImgURL, ObjectKey: img.ObjectKey, OwnerID: img.ProductID, CreatedAt: img.CreatedAt,
			}
		}
	}
	return models
}

func (CatalogConverterImpl) ProductsToDomain(models []ProductRedisModel) []domain.Product {
	entities := make([]domain.Product, len(models))
	for i, m := range models {
		entities[i] = domain.Product{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Gender:      m.Gender,
			Price:       m.Price,
			BrandID:     m.BrandID,
			CategoryID:  m.CategoryID,
			CreatedAt:   m.CreatedAt,
			Brand:       brandToDomain(m.Brand),
			Images:      make([]domain.ProductImage, len(m.Images)),
		}
		if m.Category != nil {
			entities[i].Category = &domain.Category{ID: m.Category.ID, Name: m.Category.Name, CreatedAt: m.Category.CreatedAt}
		}
		for j, img := range m.Images {
			entities[i].Images[j] = domain.ProductImage{
				ID: img.ID, ImgURL: img.ImgURL, ObjectKey: img.ObjectKey, ProductID: img.OwnerID, CreatedAt: img.CreatedAt,
			}
		}
	}
	return entities
}

func (CatalogConverterImpl) AccessoriesToRedis(entities []domain.Accessory) []AccessoryRedisModel {
	models := make([]AccessoryRedisModel, len(entities))
	for i, a := range entities {
		models[i] = AccessoryRedisModel{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Color:       a.Color,
			Price:       a.Price,
			BrandID:     a.BrandID,
			CategoryID:  a.CategoryID,
			CreatedAt:   a.CreatedAt,
			Brand:       brandToRedis(a.Brand),
			Images:      make([]ImageRedisModel, len(a.Images)),
		}
		for j, img := range a.Images {
			models[i].Images[j] = ImageRedisModel{
				ID: img.ID, ImgURL: img.ImgURL, ObjectKey: img.ObjectKey, OwnerID: img.AccessoryID, CreatedAt: img.CreatedAt,
			}
		}
	}
	return models
}

func (CatalogConverterImpl) AccessoriesToDomain(models []AccessoryRedisModel) []domain.Accessory {
	entities := make([]domain.Accessory, len(models))
	for i, m := range models {
		entities[i] = domain.Accessory{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Color:       m.Color,
			Price:       m.Price,
			BrandID:     m.BrandID,
			CategoryID:  m.CategoryID,
			CreatedAt:   m.CreatedAt,
			Brand:       brandToDomain(m.Brand),
			Images:      make([]domain.AccessoryImage, len(m.Images)),
		}
		for j, img := range m.Images {
			entities[i].Images[j] = domain.AccessoryImage{
				ID: img.ID, ImgURL: img.ImgURL, ObjectKey: img.ObjectKey, AccessoryID: img.OwnerID, CreatedAt: img.CreatedAt,
			}
		}
	}
	return entities
}

func brandToRedis(b *domain.Brand) *BrandRedisModel {
	if b == nil {
		return nil
	}
	return &BrandRedisModel{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}

func brandToDomain(m *BrandRedisModel) *domain.Brand {
	if m == nil {
		return nil
	}
	return &domain.Brand{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
}
