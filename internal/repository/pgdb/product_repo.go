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

const productWithBrandSelect = `
	SELECT
		p.id, p.name, p.description, p.gender, p.price, p.brand_id, p.category_id, p.created_at,
		b.id, b.name, b.created_at
	FROM products p
	JOIN brands b ON b.id = p.brand_id
`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	// VALUES ($1, $2, $3, $4, $5, $6) name, description, gender, price, brand_id, category_id
	query := `
		INSERT INTO products (name, description, gender, price, brand_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`

	if err := tr.Querier(ctx, p.pool).QueryRow(ctx, query,
		model.Name, model.Description, model.Gender, model.Price, model.BrandID, model.CategoryID,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, gender, price, brand_id, category_id, created_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	if err := tr.Querier(ctx, p.pool).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Description, &model.Gender,
		&model.Price, &model.BrandID, &model.CategoryID, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrRecordNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListWithRelations возвращает все товары с брендом, категорией и изображениями.
func (p *ProductRepo) ListWithRelations(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT
			p.id, p.name, p.description, p.gender, p.price, p.brand_id, p.category_id, p.created_at,
			b.id, b.name, b.created_at,
			c.id, c.name, c.created_at
		FROM products p
		JOIN brands b ON b.id = p.brand_id
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id
	`

	rows, err := tr.Querier(ctx, p.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var (
			model    converter.ProductModel
			brand    domain.Brand
			category domain.Category
		)
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Gender,
			&model.Price, &model.BrandID, &model.CategoryID, &model.CreatedAt,
			&brand.ID, &brand.Name, &brand.CreatedAt,
			&category.ID, &category.Name, &category.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		product := p.conv.ToEntity(&model)
		product.Brand = &brand
		product.Category = &category
		result = append(result, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.attachImages(ctx, result); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) FindByBrandID(ctx context.Context, brandID int64) ([]domain.Product, error) {
	return p.listWithBrand(ctx, productWithBrandSelect+` WHERE p.brand_id = $1 ORDER BY p.id`, brandID)
}

// SearchByName ищет по подстроке в имени с учётом регистра.
func (p *ProductRepo) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	return p.listWithBrand(ctx, productWithBrandSelect+` WHERE p.name LIKE $1 ORDER BY p.id`, containsPattern(name))
}

// FilterByGender ищет по подстроке в поле gender, поэтому "men" находит и "women".
func (p *ProductRepo) FilterByGender(ctx context.Context, gender string) ([]domain.Product, error) {
	return p.listWithBrand(ctx, productWithBrandSelect+` WHERE p.gender LIKE $1 ORDER BY p.id`, containsPattern(gender))
}

func (p *ProductRepo) listWithBrand(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := tr.Querier(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var (
			model converter.ProductModel
			brand domain.Brand
		)
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Gender,
			&model.Price, &model.BrandID, &model.CategoryID, &model.CreatedAt,
			&brand.ID, &brand.Name, &brand.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		product := p.conv.ToEntity(&model)
		product.Brand = &brand
		result = append(result, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// attachImages одним запросом подгружает изображения для списка товаров.
func (p *ProductRepo) attachImages(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	index := make(map[int64]int, len(products))
	for i, product := range products {
		ids[i] = product.ID
		index[product.ID] = i
		products[i].Images = make([]domain.ProductImage, 0)
	}

	query := `
		SELECT id, img_url, object_key, product_id, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY id
	`

	rows, err := tr.Querier(ctx, p.pool).Query(ctx, query, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var model converter.ProductImageModel
		if err := rows.Scan(&model.ID, &model.ImgURL, &model.ObjectKey, &model.ProductID, &model.CreatedAt); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		i := index[model.ProductID]
		products[i].Images = append(products[i].Images, *p.conv.ImageToEntity(&model))
	}

	return rows.Err()
}
