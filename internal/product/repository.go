package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ramba-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, int, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	LatestCodeByType(ctx context.Context, pt ProductType) (string, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, input NewProduct, code string) (*Product, error)
	Update(ctx context.Context, id string, input NewProduct) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, product_code, name, product_type, sub_category, materials,
	description, price, moq, images, width, length, wash_care, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.ProductCode, &p.Name, &p.ProductType, &p.SubCategory,
		pq.Array(&p.Materials), &p.Description, &p.Price, &p.MOQ,
		pq.Array(&p.Images), &p.Width, &p.Length, pq.Array(&p.WashCare),
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	where := " WHERE 1=1"
	args := []any{}
	argIndex := 1

	if opts.Type != nil {
		where += fmt.Sprintf(" AND product_type = $%d", argIndex)
		args = append(args, *opts.Type)
		argIndex++
	}

	if opts.SubCategory != nil && *opts.SubCategory != "" {
		where += fmt.Sprintf(" AND sub_category = $%d", argIndex)
		args = append(args, *opts.SubCategory)
		argIndex++
	}

	if len(opts.Materials) > 0 {
		// Overlap: any of the requested materials matches.
		where += fmt.Sprintf(" AND materials && $%d", argIndex)
		args = append(args, pq.Array(opts.Materials))
		argIndex++
	}

	if opts.Search != nil && *opts.Search != "" {
		where += fmt.Sprintf(
			" AND (name ILIKE $%d OR description ILIKE $%d OR product_code ILIKE $%d)",
			argIndex, argIndex, argIndex,
		)
		args = append(args, "%"+*opts.Search+"%")
		argIndex++
	}

	if len(opts.IDs) > 0 {
		where += fmt.Sprintf(" AND id = ANY($%d)", argIndex)
		args = append(args, pq.Array(opts.IDs))
		argIndex++
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products"+where, args...,
	).Scan(&total); err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, opts.Limit, (opts.Page-1)*opts.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}

	return products, total, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// LatestCodeByType returns the code of the most recently created product of
// the category, or "" when the category is empty.
func (r *repository) LatestCodeByType(ctx context.Context, pt ProductType) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx, `
		SELECT product_code FROM products
		WHERE product_type = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, pt).Scan(&code)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return code, err
}

func (r *repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE product_code = $1)`, code,
	).Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, input NewProduct, code string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			id, product_code, name, product_type, sub_category, materials,
			description, price, moq, images, width, length, wash_care
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING `+productColumns,
		uuid.NewString(), code, input.Name, input.ProductType, input.SubCategory,
		pq.Array(input.Materials), input.Description, input.Price, input.MOQ,
		pq.Array(input.Images), input.Width, input.Length, pq.Array(input.WashCare),
	)

	return scanProduct(row)
}

func (r *repository) Update(ctx context.Context, id string, input NewProduct) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products SET
			name = $1, product_type = $2, sub_category = $3, materials = $4,
			description = $5, price = $6, moq = $7, images = $8,
			width = $9, length = $10, wash_care = $11
		WHERE id = $12
		RETURNING `+productColumns,
		input.Name, input.ProductType, input.SubCategory, pq.Array(input.Materials),
		input.Description, input.Price, input.MOQ, pq.Array(input.Images),
		input.Width, input.Length, pq.Array(input.WashCare), id,
	)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
