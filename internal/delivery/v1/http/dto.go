package http

import (
	"time"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/shopspring/decimal"
)

// REQUESTS

// productForm: поля формы создания часов после разбора multipart.
type productForm struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=4000"`
	Gender      string `validate:"required,max=32"`
	Price       int64  `validate:"gte=0"`
	BrandID     int64  `validate:"gt=0"`
	CategoryID  int64  `validate:"gt=0"`
}

type accessoryForm struct {
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=4000"`
	Color       string `validate:"required,max=64"`
	Price       int64  `validate:"gte=0"`
	BrandID     int64  `validate:"gt=0"`
	CategoryID  int64  `validate:"gt=0"`
}

// NameRequest: тело запроса создания бренда или категории.
// Пустое имя проверяет usecase, чтобы клиент получил его сообщение.
type NameRequest struct {
	Name string `json:"name" validate:"max=255"`
}

type LikeRequest struct {
	UserID    int64 `json:"user_id" validate:"gte=0"`
	ProductID int64 `json:"product_id" validate:"gte=0"`
	LikeCount int32 `json:"like_count"`
}

// RESPONSES

type BrandResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageResponse struct {
	ID     int64  `json:"id"`
	ImgURL string `json:"img_url"`
}

type ProductResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Gender      string            `json:"gender"`
	Price       string            `json:"price"`
	BrandID     int64             `json:"brand_id"`
	CategoryID  int64             `json:"category_id"`
	CreatedAt   time.Time         `json:"created_at"`
	Brand       *BrandResponse    `json:"brand,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Images      []ImageResponse   `json:"images"`
}

type AccessoryResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Price       string          `json:"price"`
	BrandID     int64           `json:"brand_id"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Brand       *BrandResponse  `json:"brand,omitempty"`
	Images      []ImageResponse `json:"images"`
}

type LikeResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	ProductID int64      `json:"product_id"`
	LikeCount int32      `json:"like_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// MAPPERS

// centsToPrice форматирует цену в центах как "599.99".
func centsToPrice(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func toBrandResponse(b *domain.Brand) *BrandResponse {
	if b == nil {
		return nil
	}
	return &BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}

func toCategoryResponse(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toProductResponse(p *domain.Product) ProductResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{ID: img.ID, ImgURL: img.ImgURL})
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Gender:      p.Gender,
		Price:       centsToPrice(p.Price),
		BrandID:     p.BrandID,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		Brand:       toBrandResponse(p.Brand),
		Category:    toCategoryResponse(p.Category),
		Images:      images,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, toProductResponse(&products[i]))
	}
	return res
}

func toAccessoryResponse(a *domain.Accessory) AccessoryResponse {
	images := make([]ImageResponse, 0, len(a.Images))
	for _, img := range a.Images {
		images = append(images, ImageResponse{ID: img.ID, ImgURL: img.ImgURL})
	}
	return AccessoryResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Color:       a.Color,
		Price:       centsToPrice(a.Price),
		BrandID:     a.BrandID,
		CategoryID:  a.CategoryID,
		CreatedAt:   a.CreatedAt,
		Brand:       toBrandResponse(a.Brand),
		Images:      images,
	}
}

func toAccessoriesResponse(accessories []domain.Accessory) []AccessoryResponse {
	res := make([]AccessoryResponse, 0, len(accessories))
	for i := range accessories {
		res = append(res, toAccessoryResponse(&accessories[i]))
	}
	return res
}

func toLikeResponse(l *domain.Like) LikeResponse {
	return LikeResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		ProductID: l.ProductID,
		LikeCount: l.LikeCount,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
