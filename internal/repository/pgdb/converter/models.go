package converter

import "time"

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type UserModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Gender      string    `db:"gender"`
	Price       int64     `db:"price"`
	BrandID     int64     `db:"brand_id"`
	CategoryID  int64     `db:"category_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type ProductImageModel struct {
	ID        int64     `db:"id"`
	ImgURL    string    `db:"img_url"`
	ObjectKey string    `db:"object_key"`
	ProductID int64     `db:"product_id"`
	CreatedAt time.Time `db:"created_at"`
}

// AccessoryModel представляет запись таблицы accessories в PostgreSQL.
type AccessoryModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	Price       int64     `db:"price"`
	BrandID     int64     `db:"brand_id"`
	CategoryID  int64     `db:"category_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type AccessoryImageModel struct {
	ID          int64     `db:"id"`
	ImgURL      string    `db:"img_url"`
	ObjectKey   string    `db:"object_key"`
	AccessoryID int64     `db:"accessory_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type LikeModel struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	ProductID int64      `db:"product_id"`
	LikeCount int32      `db:"like_count"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID int64      `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
