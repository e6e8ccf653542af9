package pgdb

import (
	"context"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const accessoryWithBrandSelect = `
	SELECT
		a.id, a.name, a.description, a.color, a.price, a.brand_id, a.category_id, a.created_at,
		b.id, b.name, b.created_at
	FROM accessories a
	JOIN brands b ON b.id = a.brand_id
`

// AccessoryRepo реализует репозиторий аксессуаров поверх PostgreSQL.
type AccessoryRepo struct {
	pool *pgxpool.Pool
	conv converter.AccessoryConverter
}

func NewAccessoryRepo(pool *pgxpool.Pool, conv converter.AccessoryConverter) *AccessoryRepo {
	return &AccessoryRepo{pool: pool, conv: conv}
}

func (a *AccessoryRepo) Create(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	model := a.conv.ToModel(accessory)

	// VALUES ($1, $2, $3, $4, $5, $6) name, description, color, price, brand_id, category_id
	query := `
		INSERT INTO accessories (name, description, color, price, brand_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tr.Querier(ctx, a.pool).QueryRow(ctx, query,
		model.Name, model.Description, model.Color, model.Price, model.BrandID, model.CategoryID,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}

// ListWithImages возвращает все аксессуары с брендом и изображениями.
func (a *AccessoryRepo) ListWithImages(ctx context.Context) ([]domain.Accessory, error) {
	accessories, err := a.listWithBrand(ctx, accessoryWithBrandSelect+` ORDER BY a.id`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := a.attachImages(ctx, accessories); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return accessories, nil
}

func (a *AccessoryRepo) SearchByName(ctx context.Context, name string) ([]domain.Accessory, error) {
	return a.listWithBrand(ctx, accessoryWithBrandSelect+` WHERE a.name LIKE $1 ORDER BY a.id`, containsPattern(name))
}

// FilterByColor ищет по точному совпадению цвета.
func (a *AccessoryRepo) FilterByColor(ctx context.Context, color string) ([]domain.Accessory, error) {
	return a.listWithBrand(ctx, accessoryWithBrandSelect+` WHERE a.color = $1 ORDER BY a.id`, color)
}

func (a *AccessoryRepo) listWithBrand(ctx context.Context, query string, args ...any) ([]domain.Accessory, error) {
	rows, err := tr.Querier(ctx, a.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Accessory, 0)
	for rows.Next() {
		var (
			model converter.AccessoryModel
			brand domain.Brand
		)
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Color,
			&model.Price, &model.BrandID, &model.CategoryID, &model.CreatedAt,
			&brand.ID, &brand.Name, &brand.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		accessory := a.conv.ToEntity(&model)
		accessory.Brand = &brand
		result = append(result, *accessory)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (a *AccessoryRepo) attachImages(ctx context.Context, accessories []domain.Accessory) error {
	if len(accessories) == 0 {
		return nil
	}

	ids := make([]int64, len(accessories))
	index := make(map[int64]int, len(accessories))
	for i, accessory := range accessories {
		ids[i] = accessory.ID
		index[accessory.ID] = i
		accessories[i].Images = make([]domain.AccessoryImage, 0)
	}

	query := `
		SELECT id, img_url, object_key, accessory_id, created_at
		FROM accessory_images
		WHERE accessory_id = ANY($1)
		ORDER BY id
	`

	rows, err := tr.Querier(ctx, a.pool).Query(ctx, query, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.AccessoryImageModel
		if err := rows.Scan(&model.ID, &model.ImgURL, &model.ObjectKey, &model.AccessoryID, &model.CreatedAt); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		i := index[model.AccessoryID]
		accessories[i].Images = append(accessories[i].Images, *a.conv.ImageToEntity(&model))
	}

	return rows.Err()
}
