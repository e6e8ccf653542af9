package domain

import "time"

// Accessory описывает аксессуар (ремешки, коробки, инструменты)
type Accessory struct {
	ID          int64
	Name        string
	Description string
	Color       string
	Price       int64 // Цена хранится в центах
	BrandID     int64
	CategoryID  int64
	CreatedAt   time.Time

	Brand  *Brand
	Images []AccessoryImage
}

// AccessoryImage: изображение аксессуара.
type AccessoryImage struct {
	ID          int64
	ImgURL      string
	ObjectKey   string
	AccessoryID int64
	CreatedAt   time.Time
}

func NewAccessory(name, description, color string, price, brandID, categoryID int64) *Accessory {
	return &Accessory{
		Name:        name,
		Description: description,
		Color:       color,
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
	}
}

func NewAccessoryImage(accessoryID int64, imgURL, objectKey string) *AccessoryImage {
	return &AccessoryImage{
		ImgURL:      imgURL,
		ObjectKey:   objectKey,
		AccessoryID: accessoryID,
	}
}
