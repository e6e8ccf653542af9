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

type AccessoryImageRepo struct {
	pool *pgxpool.Pool
	conv converter.AccessoryConverter
}

func NewAccessoryImageRepo(pool *pgxpool.Pool, conv converter.AccessoryConverter) *AccessoryImageRepo {
	return &AccessoryImageRepo{pool: pool, conv: conv}
}

func (a *AccessoryImageRepo) Create(ctx context.Context, image *domain.AccessoryImage) (*domain.AccessoryImage, error) {
	model := a.conv.ImageToModel(image)

	query := `
		INSERT INTO accessory_images (img_url, object_key, accessory_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	if err := tr.Querier(ctx, a.pool).QueryRow(ctx, query, model.ImgURL, model.ObjectKey, model.AccessoryID).
		Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ImageToEntity(model), nil
}
