package domain

import "time"

// Product описывает часы в каталоге
type Product struct {
	ID          int64
	Name        string
	Description string
	Gender      string
	Price       int64 // Цена хранится в центах
	BrandID     int64
	CategoryID  int64
	CreatedAt   time.Time

	// Связи, заполняются только запросами, которые их читают
	Brand    *Brand
	Category *Category
	Images   []ProductImage
}

// ProductImage: изображение товара. Товару принадлежит сколько угодно изображений.
type ProductImage struct {
	ID        int64
	ImgURL    string
	ObjectKey string
	ProductID int64
	CreatedAt time.Time
}

func NewProduct(name, description, gender string, price, brandID, categoryID int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Gender:      gender,
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
	}
}

func NewProductImage(productID int64, imgURL, objectKey string) *ProductImage {
	return &ProductImage{
		ImgURL:    imgURL,
		ObjectKey: objectKey,
		ProductID: productID,
	}
}
