package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/shopscope/pkg/domain"
)

// ProductRepository handles product-related database operations
type ProductRepository struct {
	db *sqlx.DB
}

// productSQL represents a product for SQL operations
type productSQL struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Stock       int       `db:"stock"`
	PriceCents  int64     `db:"price_cents"`
	Description string    `db:"description"`
	Tags        tagsSQL   `db:"tags"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// tagsSQL is a JSON array of tags for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = tagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*t = tagsSQL{}
		return nil
	}

	return json.Unmarshal(data, t)
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// CreateProduct inserts a new product and sets its ID
func (r *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	row := toProductSQL(product)
	query := `
		INSERT INTO products (name, stock, price_cents, description, tags)
		VALUES (:name, :stock, :price_cents, :description, :tags)
	`
	return withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		product.ID = id
		return nil
	})
}

// UpdateProduct stores all fields of an existing product
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	row := toProductSQL(product)
	query := `
		UPDATE products
		SET name = :name, stock = :stock, price_cents = :price_cents,
		    description = :description, tags = :tags
		WHERE id = :id
	`
	return withLockRetry(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		return checkAffected(result, product.ID)
	})
}

// UpdateProductTags sets tags of a product
func (r *ProductRepository) UpdateProductTags(ctx context.Context, id int64, tags []string) error {
	return withLockRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "UPDATE products SET tags = ? WHERE id = ?", tagsSQL(tags), id)
		if err != nil {
			return fmt.Errorf("update product tags: %w", err)
		}
		return checkAffected(result, id)
	})
}

// GetProduct retrieves a product by ID
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var row productSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM products WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toDomain(), nil
}

// GetProducts retrieves products by IDs, unknown IDs are skipped
func (r *ProductRepository) GetProducts(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM products WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}
	return r.selectProducts(ctx, r.db.Rebind(query), args...)
}

// ListProducts returns up to limit products, newest first
func (r *ProductRepository) ListProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	return r.selectProducts(ctx, "SELECT * FROM products ORDER BY id DESC LIMIT ?", limit)
}

// ListProductsByTags returns up to limit products of the whole catalog ordered by preference score,
// newest first within the same score. A product scores len(tags)-i for every distinct tags[i] it carries.
func (r *ProductRepository) ListProductsByTags(ctx context.Context, tags []string, limit int) ([]*domain.Product, error) {
	if len(tags) == 0 {
		return r.ListProducts(ctx, limit)
	}

	var cases strings.Builder
	args := make([]interface{}, 0, 2*len(tags)+1)
	for i, tag := range tags {
		cases.WriteString(" WHEN ? THEN ?")
		args = append(args, tag, len(tags)-i)
	}
	q := `
		SELECT * FROM products
		ORDER BY COALESCE((
			SELECT SUM(CASE t.value` + cases.String() + ` ELSE 0 END)
			FROM (SELECT DISTINCT value FROM json_each(products.tags)) t
		), 0) DESC, id DESC
		LIMIT ?
	`
	args = append(args, limit)
	return r.selectProducts(ctx, q, args...)
}

// SearchProducts returns products with query in name, description or tags, newest first
func (r *ProductRepository) SearchProducts(ctx context.Context, query string, limit int) ([]*domain.Product, error) {
	q := `
		SELECT * FROM products
		WHERE name LIKE '%' || ? || '%'
		OR description LIKE '%' || ? || '%'
		OR EXISTS (SELECT 1 FROM json_each(products.tags) WHERE json_each.value = ?)
		ORDER BY id DESC
		LIMIT ?
	`
	return r.selectProducts(ctx, q, query, query, query, limit)
}

// GetUntaggedProducts returns products with id above afterID having a description but no tags, oldest first
func (r *ProductRepository) GetUntaggedProducts(ctx context.Context, afterID int64, limit int) ([]*domain.Product, error) {
	q := `
		SELECT * FROM products
		WHERE id > ? AND TRIM(description) != '' AND (tags = '[]' OR tags = '')
		ORDER BY id
		LIMIT ?
	`
	return r.selectProducts(ctx, q, afterID, limit)
}

// GetDescriptions returns up to limit non-empty product descriptions, oldest products first
func (r *ProductRepository) GetDescriptions(ctx context.Context, limit int) ([]string, error) {
	var descriptions []string
	q := "SELECT description FROM products WHERE TRIM(description) != '' ORDER BY id LIMIT ?"
	if err := r.db.SelectContext(ctx, &descriptions, q, limit); err != nil {
		return nil, fmt.Errorf("get descriptions: %w", err)
	}
	return descriptions, nil
}

func (r *ProductRepository) selectProducts(ctx context.Context, query string, args ...interface{}) ([]*domain.Product, error) {
	var rows []productSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	products := make([]*domain.Product, len(rows))
	for i := range rows {
		products[i] = rows[i].toDomain()
	}
	return products, nil
}

func checkAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toProductSQL(p *domain.Product) *productSQL {
	return &productSQL{
		ID:          p.ID,
		Name:        p.Name,
		Stock:       p.Stock,
		PriceCents:  p.PriceCents,
		Description: p.Description,
		Tags:        tagsSQL(p.Tags),
	}
}

func (p *productSQL) toDomain() *domain.Product {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Stock:       p.Stock,
		PriceCents:  p.PriceCents,
		Description: p.Description,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
	}
}
