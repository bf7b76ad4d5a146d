package repository

import (
	"context"
	"database/sql"
	"errors"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"
)

// ProductRepository is the inventory store. Update replaces every field of
// the addressed record.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
}

type pgProductRepository struct {
	db *sql.DB
}

func NewPgProductRepository(db *sql.DB) ProductRepository {
	return &pgProductRepository{db: db}
}

func (r *pgProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	query := `INSERT INTO products (name, description, category, price, quantity)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Quantity).Scan(&p.ID)
	if err != nil {
		return 0, r.convertError("pgProductRepository.Create", err)
	}
	return p.ID, nil
}

func (r *pgProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT id, name, description, category, price, quantity FROM products WHERE id = $1`
	p := &model.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.StoreError("pgProductRepository.FindByID", err)
	}
	return p, nil
}

func (r *pgProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, description, category, price, quantity FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.StoreError("pgProductRepository.List", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Quantity); err != nil {
			return nil, common.StoreError("pgProductRepository.List", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, common.StoreError("pgProductRepository.List", err)
	}
	return products, nil
}

func (r *pgProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `UPDATE products SET
	            name = $1, description = $2, category = $3, price = $4, quantity = $5
	          WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Quantity, p.ID)
	if err != nil {
		return r.convertError("pgProductRepository.Update", err)
	}
	return requireAffected(res, "pgProductRepository.Update")
}

func (r *pgProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return common.StoreError("pgProductRepository.Delete", err)
	}
	return requireAffected(res, "pgProductRepository.Delete")
}

func (r *pgProductRepository) convertError(op string, err error) error {
	if isCheckViolation(err) {
		return common.Validationf("price and quantity must be non-negative")
	}
	if isOutOfRange(err) {
		return common.Validationf("price or quantity is out of range")
	}
	return common.StoreError(op, err)
}
