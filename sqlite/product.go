package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shopgrid"
)

// Compile-time interface verification.
var _ shopgrid.ProductService = (*ProductService)(nil)

// ProductService implements shopgrid.ProductService using SQLite.
type ProductService struct {
	db *DB
}

// NewProductService creates a new ProductService.
func NewProductService(db *DB) *ProductService {
	return &ProductService{db: db}
}

// hashContent computes xxHash of the description HTML and returns a hex
// string. The hash lets cross-run tooling detect description changes
// without diffing the full fragment.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveProduct inserts a product or replaces the stored record with the same
// identifier.
func (s *ProductService) SaveProduct(ctx context.Context, p *shopgrid.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.ImportedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (
			id, title, price, stock_status, product_type, vendor, tags,
			description, benefits, how_to_use, ingredients, specifications,
			inclusions, care_instructions, product_url, image_url, handle,
			content_hash, imported_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			price = excluded.price,
			stock_status = excluded.stock_status,
			product_type = excluded.product_type,
			vendor = excluded.vendor,
			tags = excluded.tags,
			description = excluded.description,
			benefits = excluded.benefits,
			how_to_use = excluded.how_to_use,
			ingredients = excluded.ingredients,
			specifications = excluded.specifications,
			inclusions = excluded.inclusions,
			care_instructions = excluded.care_instructions,
			product_url = excluded.product_url,
			image_url = excluded.image_url,
			handle = excluded.handle,
			content_hash = excluded.content_hash,
			imported_at = excluded.imported_at
	`, p.ID, p.Title, p.Price, p.StockStatus, p.Type, p.Vendor, p.Tags,
		toNull(p.Description), toNull(p.Benefits), toNull(p.HowToUse),
		toNull(p.Ingredients), toNull(p.Specifications), toNull(p.Inclusions),
		toNull(p.CareInstructions), p.URL, p.ImageURL, p.Handle,
		hashContent(p.DescriptionHTML), p.ImportedAt.Format(time.RFC3339))

	return err
}

// FindProductByID retrieves a product by identifier.
func (s *ProductService) FindProductByID(ctx context.Context, id int64) (*shopgrid.Product, error) {
	row := s.db.QueryRowContext(ctx, selectProducts+" WHERE id = ?", id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, shopgrid.Errorf(shopgrid.ENOTFOUND, "product %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// FindProducts retrieves products matching the filter.
func (s *ProductService) FindProducts(ctx context.Context, filter shopgrid.ProductFilter) ([]*shopgrid.Product, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectProducts)
	query.WriteString(" WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Vendor != nil {
		query.WriteString(" AND vendor = ?")
		args = append(args, *filter.Vendor)
	}
	if filter.Type != nil {
		query.WriteString(" AND product_type = ?")
		args = append(args, *filter.Type)
	}

	switch filter.SortBy {
	case shopgrid.SortByImportedAt:
		query.WriteString(" ORDER BY imported_at DESC")
	default:
		query.WriteString(" ORDER BY id ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*shopgrid.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// DeleteProduct permanently removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shopgrid.Errorf(shopgrid.ENOTFOUND, "product %d not found", id)
	}

	return nil
}

const selectProducts = `
	SELECT id, title, price, stock_status, product_type, vendor, tags,
		description, benefits, how_to_use, ingredients, specifications,
		inclusions, care_instructions, product_url, image_url, handle,
		imported_at
	FROM products`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*shopgrid.Product, error) {
	var p shopgrid.Product
	var description, benefits, howToUse, ingredients sql.NullString
	var specifications, inclusions, careInstructions sql.NullString
	var importedAt string

	if err := row.Scan(&p.ID, &p.Title, &p.Price, &p.StockStatus, &p.Type,
		&p.Vendor, &p.Tags, &description, &benefits, &howToUse, &ingredients,
		&specifications, &inclusions, &careInstructions, &p.URL, &p.ImageURL,
		&p.Handle, &importedAt); err != nil {
		return nil, err
	}

	p.Description = fromNull(description)
	p.Benefits = fromNull(benefits)
	p.HowToUse = fromNull(howToUse)
	p.Ingredients = fromNull(ingredients)
	p.Specifications = fromNull(specifications)
	p.Inclusions = fromNull(inclusions)
	p.CareInstructions = fromNull(careInstructions)

	var err error
	p.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func toNull(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func fromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
