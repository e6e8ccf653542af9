package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// BrandRepo реализует репозиторий брендов поверх PostgreSQL.
type BrandRepo struct {
	pool *pgxpool.Pool
	conv converter.BrandConverter
}

func NewBrandRepo(pool *pgxpool.Pool, conv converter.BrandConverter) *BrandRepo {
	return &BrandRepo{pool: pool, conv: conv}
}

// Create создаёт бренд. Повтор имени возвращает e.ErrDuplicate.
func (b *BrandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	query := `
		INSERT INTO brands(name) VALUES ($1)
		RETURNING id, name, created_at;
	`

	var model converter.BrandModel
	if err := tr.Querier(ctx, b.pool).QueryRow(ctx, query, brand.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicate)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BrandRepo) FindByID(ctx context.Context, id int64) (*domain.Brand, error) {
	query := `SELECT id, name, created_at FROM brands WHERE id = $1`

	return b.findOne(ctx, query, id)
}

// FindFirstByName ищет первый по id бренд, имя которого содержит подстроку без учёта регистра.
func (b *BrandRepo) FindFirstByName(ctx context.Context, name string) (*domain.Brand, error) {
	query := `
		SELECT id, name, created_at
		FROM brands
		WHERE name ILIKE $1
		ORDER BY id
		LIMIT 1
	`

	return b.findOne(ctx, query, containsPattern(name))
}

func (b *BrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	query := `SELECT id, name, created_at FROM brands ORDER BY id`

	rows, err := tr.Querier(ctx, b.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Brand, 0)
	for rows.Next() {
		var model converter.BrandModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *b.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (b *BrandRepo) findOne(ctx context.Context, query string, args ...any) (*domain.Brand, error) {
	var model converter.BrandModel
	if err := tr.Querier(ctx, b.pool).QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.Name, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrRecordNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}
