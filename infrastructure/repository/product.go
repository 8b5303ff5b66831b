package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revoa/revoa-api/infrastructure/database/postgres"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetByExternalSKU(externalSKU string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	SaveOrUpdate(product *domain.Product) (*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

const productColumns = "p.id, p.external_sku, p.title, p.description, p.amazon_price, p.supplier_cost, p.shipping_cost, p.suggested_price, p.image_urls, p.status, p.created_at, p.updated_at"

func (r *productRepository) GetByExternalSKU(externalSKU string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.external_sku": externalSKU}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	product := &domain.Product{}
	var imageURLs pq.StringArray
	if err := row.Scan(
		&product.ID,
		&product.ExternalSKU,
		&product.Title,
		&product.Description,
		&product.AmazonPrice,
		&product.SupplierCost,
		&product.ShippingCost,
		&product.SuggestedPrice,
		&imageURLs,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}
	product.ImageURLs = imageURLs

	return product, nil
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		var imageURLs pq.StringArray
		if err := rows.Scan(
			&product.ID,
			&product.ExternalSKU,
			&product.Title,
			&product.Description,
			&product.AmazonPrice,
			&product.SupplierCost,
			&product.ShippingCost,
			&product.SuggestedPrice,
			&imageURLs,
			&product.Status,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produtos: %w", err)
		}
		product.ImageURLs = imageURLs
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) SaveOrUpdate(product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do produto: %w", err)
		}
		product.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("products").
		Columns("id", "external_sku", "title", "description", "amazon_price", "supplier_cost", "shipping_cost", "suggested_price", "image_urls", "status").
		Values(
			product.ID,
			product.ExternalSKU,
			product.Title,
			product.Description,
			product.AmazonPrice,
			product.SupplierCost,
			product.ShippingCost,
			product.SuggestedPrice,
			pq.Array(product.ImageURLs),
			product.Status,
		).
		Suffix(`
			ON CONFLICT (external_sku) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				amazon_price = EXCLUDED.amazon_price,
				supplier_cost = EXCLUDED.supplier_cost,
				shipping_cost = EXCLUDED.shipping_cost,
				suggested_price = EXCLUDED.suggested_price,
				image_urls = EXCLUDED.image_urls,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return product, nil
}
