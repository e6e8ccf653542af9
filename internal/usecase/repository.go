package usecase

import (
	"context"

	"github.com/DRSN-tech/watch-store/internal/domain"
)

// Все Find* методы возвращают e.ErrRecordNotFound, если запись отсутствует.

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	FindByID(ctx context.Context, id int64) (*domain.Brand, error)
	// FindFirstByName ищет первый бренд, имя которого содержит подстроку без учёта регистра.
	FindFirstByName(ctx context.Context, name string) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// ListWithRelations возвращает все товары с брендом, категорией и изображениями.
	ListWithRelations(ctx context.Context) ([]domain.Product, error)
	// FindByBrandID возвращает товары бренда с заполненным Brand.
	FindByBrandID(ctx context.Context, brandID int64) ([]domain.Product, error)
	// SearchByName ищет по подстроке в имени, Brand заполнен.
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	FilterByGender(ctx context.Context, gender string) ([]domain.Product, error)
}

type ProductImageRepository interface {
	Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error)
}

type AccessoryRepository interface {
	Create(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error)
	// ListWithImages возвращает все аксессуары с изображениями.
	ListWithImages(ctx context.Context) ([]domain.Accessory, error)
	SearchByName(ctx context.Context, name string) ([]domain.Accessory, error)
	// FilterByColor ищет по точному совпадению цвета.
	FilterByColor(ctx context.Context, color string) ([]domain.Accessory, error)
}

type AccessoryImageRepository interface {
	Create(ctx context.Context, image *domain.AccessoryImage) (*domain.AccessoryImage, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type LikeRepository interface {
	// Upsert создаёт лайк или перезаписывает LikeCount существующего для той же пары пользователь/товар.
	Upsert(ctx context.Context, like *domain.Like) (*domain.Like, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// MarkAsPending возвращает событие в очередь после неудачной отправки.
	MarkAsPending(ctx context.Context, id int64) error
	MarkAsFailed(ctx context.Context, id int64) error
}

// ImageRepository хранит байты изображений в объектном хранилище.
type ImageRepository interface {
	// Upload загружает объект и возвращает его ключ.
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, bucket, key string) error
}

// CacheRepository кэширует полные списки каталога. Get* возвращают e.ErrCacheMiss при промахе.
//
// Каждый Delete* увеличивает версию списка. Set* записывает список, только если версия
// не изменилась с момента чтения через *Version, иначе возвращает e.ErrCacheStale.
type CacheRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	ProductsVersion(ctx context.Context) (int64, error)
	SetProducts(ctx context.Context, version int64, products []domain.Product) error
	DeleteProducts(ctx context.Context) error
	GetAccessories(ctx context.Context) ([]domain.Accessory, error)
	AccessoriesVersion(ctx context.Context) (int64, error)
	SetAccessories(ctx context.Context, version int64, accessories []domain.Accessory) error
	DeleteAccessories(ctx context.Context) error
}
