package usecase

import (
	"time"

	"github.com/DRSN-tech/watch-store/internal/domain"
)

// PRODUCT / ACCESSORY USECASE

// ImageFile представляет изображение, загруженное через multipart/form-data.
type ImageFile struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type, определённый по содержимому
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// InsertProductReq: запрос на добавление часов. File == nil означает, что файл не передан.
type InsertProductReq struct {
	Name        string
	Description string
	Gender      string
	Price       int64
	BrandID     int64
	CategoryID  int64
	File        *ImageFile
}

// InsertAccessoryReq: запрос на добавление аксессуара.
type InsertAccessoryReq struct {
	Name        string
	Description string
	Color       string
	Price       int64
	BrandID     int64
	CategoryID  int64
	File        *ImageFile
}

// ProductResponse: сохранённый товар и его изображение.
type ProductResponse struct {
	Product *domain.Product
	Image   *domain.ProductImage
}

// AccessoryResponse: сохранённый аксессуар и его изображение.
type AccessoryResponse struct {
	Accessory *domain.Accessory
	Image     *domain.AccessoryImage
}

// INFRASTUCTURE

// UploadImageReq: запрос на загрузку одного изображения в каталог Folder.
type UploadImageReq struct {
	Folder string
	Image  *ImageFile
}

// UploadImageRes: ключ объекта в MinIO и публичный URL.
type UploadImageRes struct {
	Key string
	URL string
}

// WriteRawMessageReq: сериализованное событие. Key определяет партицию.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
	Headers map[string]string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
	// Failed: брокер окончательно отклонил событие, повторной отправки не будет.
	Failed OutboxStatus = "failed"
)

type OutboxEventType string

const (
	ProductCreated   OutboxEventType = "product.created"
	AccessoryCreated OutboxEventType = "accessory.created"
)

// OutboxEvent: событие каталога, ожидающее отправки в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewInsertProductReq(name, description, gender string, price, brandID, categoryID int64, file *ImageFile) *InsertProductReq {
	return &InsertProductReq{
		Name:        name,
		Description: description,
		Gender:      gender,
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
		File:        file,
	}
}

func NewInsertAccessoryReq(name, description, color string, price, brandID, categoryID int64, file *ImageFile) *InsertAccessoryReq {
	return &InsertAccessoryReq{
		Name:        name,
		Description: description,
		Color:       color,
		Price:       price,
		BrandID:     brandID,
		CategoryID:  categoryID,
		File:        file,
	}
}

func NewImageFile(data []byte, mimeType string, size int64, name string) *ImageFile {
	return &ImageFile{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(folder string, image *ImageFile) *UploadImageReq {
	return &UploadImageReq{
		Folder: folder,
		Image:  image,
	}
}

func NewUploadImageRes(key, url string) *UploadImageRes {
	return &UploadImageRes{
		Key: key,
		URL: url,
	}
}

func NewWriteRawMessageReq(key string, payload []byte, headers map[string]string) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
		Headers: headers,
	}
}
