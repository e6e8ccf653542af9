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

type LikeRepo struct {
	pool *pgxpool.Pool
	conv converter.LikeConverter
}

func NewLikeRepo(pool *pgxpool.Pool, conv converter.LikeConverter) *LikeRepo {
	return &LikeRepo{pool: pool, conv: conv}
}

// Upsert идемпотентно записывает лайк по паре (user_id, product_id).
// updated_at заполняется только при перезаписи существующей строки.
func (l *LikeRepo) Upsert(ctx context.Context, like *domain.Like) (*domain.Like, error) {
	model := l.conv.ToModel(like)

	// VALUES ($1, $2, $3) user_id, product_id, like_count
	query := `
		INSERT INTO likes (user_id, product_id, like_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET
			like_count = EXCLUDED.like_count,
			updated_at = NOW()
		RETURNING id, user_id, product_id, like_count, created_at, updated_at;
	`

	if err := tr.Querier(ctx, l.pool).QueryRow(ctx, query, model.UserID, model.ProductID, model.LikeCount).
		Scan(
			&model.ID, &model.UserID, &model.ProductID, &model.LikeCount,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return l.conv.ToEntity(model), nil
}
