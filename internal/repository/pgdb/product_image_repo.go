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

type ProductImageRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductImageRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductImageRepo {
	return &ProductImageRepo{pool: pool, conv: conv}
}

func (p *ProductImageRepo) Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	model := p.conv.ImageToModel(image)

	query := `
		INSERT INTO product_images (img_url, object_key, product_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`

	if err := tr.Querier(ctx, p.pool).QueryRow(ctx, query, model.ImgURL, model.ObjectKey, model.ProductID).
		Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ImageToEntity(model), nil
}
