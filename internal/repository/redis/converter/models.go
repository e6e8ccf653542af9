package converter

import "time"

type BrandRedisModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryRedisModel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ImageRedisModel struct {
	ID        int64     `json:"id"`
	ImgURL    string    `json:"img_url"`
	ObjectKey string    `json:"object_key"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRedisModel хранит товар со связями в списке каталога.
type ProductRedisModel struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Gender      string              `json:"gender"`
	Price       int64               `json:"price"`
	BrandID     int64               `json:"brand_id"`
	CategoryID  int64               `json:"category_id"`
	CreatedAt   time.Time           `json:"created_at"`
	Brand       *BrandRedisModel    `json:"brand,omitempty"`
	Category    *CategoryRedisModel `json:"category,omitempty"`
	Images      []ImageRedisModel   `json:"images"`
}

type AccessoryRedisModel struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Color       string            `json:"color"`
	Price       int64             `json:"price"`
	BrandID     int64             `json:"brand_id"`
	CategoryID  int64             `json:"category_id"`
	CreatedAt   time.Time         `json:"created_at"`
	Brand       *BrandRedisModel  `json:"brand,omitempty"`
	Images      []ImageRedisModel `json:"images"`
}
