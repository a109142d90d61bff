package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ramba-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetProductForCheckout(ctx context.Context, productID string) (*CheckoutProduct, error)
	GetBuyerName(ctx context.Context, buyerID string) (string, error)

	ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)

	Approve(ctx context.Context, id string, input ApproveInput) (*Order, error)
	Reject(ctx context.Context, id string, adminNotes *string) (*Order, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Order, error)
	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context, since time.Time) (*Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, buyer_id, order_number, status, total_cost,
	payment_terms, payment_mode, delivery_mode, delivery_timeline,
	admin_notes, admin_contact_email, admin_contact_phone,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.BuyerID, &o.OrderNumber, &o.Status, &o.TotalCost,
		&o.PaymentTerms, &o.PaymentMode, &o.DeliveryMode, &o.DeliveryTimeline,
		&o.AdminNotes, &o.AdminContactEmail, &o.AdminContactPhone,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", len(o.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	o.ID = uuid.NewString()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, buyer_id, order_number, status, total_cost)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, o.ID, o.BuyerID, o.OrderNumber, o.Status, o.TotalCost).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i := range o.Items {
		o.Items[i].ID = uuid.NewString()
		o.Items[i].OrderID = o.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity)
			VALUES ($1, $2, $3, $4)
		`, o.Items[i].ID, o.ID, o.Items[i].ProductID, o.Items[i].Quantity)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("product_id", o.Items[i].ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed", zap.String("order_id", o.ID))
	return nil
}

func (r *repository) GetProductForCheckout(ctx context.Context, productID string) (*CheckoutProduct, error) {
	var p CheckoutProduct
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, moq FROM products WHERE id = $1
	`, productID).Scan(&p.ID, &p.Name, &p.Price, &p.MOQ)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetBuyerName(ctx context.Context, buyerID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM users WHERE id = $1`, buyerID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUnauthorized
	}
	return name, err
}

func (r *repository) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	return orders, r.attachItems(ctx, orders)
}

func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, r.attachBuyers(ctx, orders)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []*Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	if err := r.attachBuyers(ctx, orders); err != nil {
		return nil, err
	}
	return o, nil
}

func collectOrders(rows *sql.Rows) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems loads items with their product projections for every order in
// one pass.
func (r *repository) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	byID := make(map[string]*Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = o
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id, oi.order_id, oi.product_id, oi.quantity,
			p.id, p.name, p.product_code, p.product_type, p.images, p.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		var p ProductSummary
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&p.ID, &p.Name, &p.ProductCode, &p.ProductType,
			pq.Array(&p.Images), &p.Price,
		)
		if err != nil {
			return err
		}

		item.Product = &p
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return rows.Err()
}

func (r *repository) attachBuyers(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if !seen[o.BuyerID] {
			seen[o.BuyerID] = true
			ids = append(ids, o.BuyerID)
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, company_name, email, country
		FROM users
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	buyers := make(map[string]*BuyerSummary, len(ids))
	for rows.Next() {
		var b BuyerSummary
		if err := rows.Scan(&b.ID, &b.Name, &b.CompanyName, &b.Email, &b.Country); err != nil {
			return err
		}
		buyers[b.ID] = &b
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, o := range orders {
		o.Buyer = buyers[o.BuyerID]
	}
	return nil
}

// Approve flips a PENDING order to APPROVED with its commercial terms.
// Optionals use COALESCE so omission leaves the stored value alone. The
// status guard in the WHERE clause backs the service-level check against
// concurrent transitions.
func (r *repository) Approve(ctx context.Context, id string, input ApproveInput) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET
			status = 'APPROVED',
			total_cost = $1,
			payment_terms = $2,
			payment_mode = $3,
			delivery_mode = $4,
			delivery_timeline = $5,
			admin_notes = COALESCE($6, admin_notes),
			admin_contact_email = COALESCE($7, admin_contact_email),
			admin_contact_phone = COALESCE($8, admin_contact_phone),
			updated_at = NOW()
		WHERE id = $9 AND status = 'PENDING'
		RETURNING `+orderColumns,
		input.TotalCost, input.PaymentTerms, input.PaymentMode,
		input.DeliveryMode, input.DeliveryTimeline,
		input.AdminNotes, input.AdminContactEmail, input.AdminContactPhone, id,
	)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotPending
	}
	return o, err
}

func (r *repository) Reject(ctx context.Context, id string, adminNotes *string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET
			status = 'REJECTED',
			admin_notes = COALESCE($1, admin_notes),
			updated_at = NOW()
		WHERE id = $2 AND status = 'PENDING'
		RETURNING `+orderColumns,
		adminNotes, id,
	)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotPending
	}
	return o, err
}

func (r *repository) Update(ctx context.Context, id string, input UpdateInput) (*Order, error) {
	set := ""
	args := []any{}
	argIndex := 1

	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", col, argIndex)
		args = append(args, v)
		argIndex++
	}

	if input.Status != nil {
		add("status", *input.Status)
	}
	if input.TotalCost != nil {
		add("total_cost", *input.TotalCost)
	}
	if input.PaymentTerms != nil {
		add("payment_terms", *input.PaymentTerms)
	}
	if input.PaymentMode != nil {
		add("payment_mode", *input.PaymentMode)
	}
	if input.DeliveryMode != nil {
		add("delivery_mode", *input.DeliveryMode)
	}
	if input.DeliveryTimeline != nil {
		add("delivery_timeline", *input.DeliveryTimeline)
	}
	if input.AdminNotes != nil {
		add("admin_notes", *input.AdminNotes)
	}
	if input.AdminContactEmail != nil {
		add("admin_contact_email", *input.AdminContactEmail)
	}
	if input.AdminContactPhone != nil {
		add("admin_contact_phone", *input.AdminContactPhone)
	}

	if len(args) == 0 {
		return r.GetByID(ctx, id)
	}

	set += ", updated_at = NOW()"
	args = append(args, id)

	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d RETURNING %s", set, argIndex, orderColumns),
		args...,
	)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) Stats(ctx context.Context, since time.Time) (*Stats, error) {
	var s Stats

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE status = 'PENDING'`,
	).Scan(&s.TotalPendingOrders)
	if err != nil {
		return nil, err
	}

	var revenue decimal.Decimal
	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_cost), 0)
		FROM orders
		WHERE created_at >= $1 AND status <> 'REJECTED'
	`, since).Scan(&revenue)
	if err != nil {
		return nil, err
	}
	s.MonthlyRevenue = revenue

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users u
		WHERE u.role = 'BUYER'
		  AND EXISTS (SELECT 1 FROM orders o WHERE o.buyer_id = u.id)
	`).Scan(&s.ActiveBuyers)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
