package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

const productsTable = "products"

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

type ProductRepository interface {
	CreateProduct(name string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	DeleteProduct(id string) error
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CreateProduct(name string) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("id", "name", "created_at").
		Values(product.ID, product.Name, product.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(productSQL, productArgs...)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListProducts() ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("id", "name", "created_at").
		From(productsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(productSQL, productArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) DeleteProduct(id string) error {
	queryBuilder := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(productSQL, productArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
