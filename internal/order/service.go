package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ramba-be/internal/logger"
	"ramba-be/internal/metrics"
	"ramba-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, buyerID string, items []CheckoutItem) (*Order, error)

	ListForBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	Get(ctx context.Context, id string) (*Order, error)

	Approve(ctx context.Context, id string, input ApproveInput) (*Order, error)
	Reject(ctx context.Context, id string, adminNotes *string) (*Order, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Order, error)
	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Checkout turns a validated item list into a PENDING order. Every line is
// checked against the product's MOQ; the total is computed from stored
// prices, never from the client.
func (s *service) Checkout(ctx context.Context, buyerID string, items []CheckoutItem) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("buyer_id", buyerID),
		zap.Int("item_count", len(items)),
	)

	if buyerID == "" {
		return nil, ErrUnauthorized
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	total := decimal.Zero
	orderItems := make([]OrderItem, 0, len(items))

	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, utils.Invalid("items", fmt.Sprintf("invalid item format: %+v", item))
		}

		p, err := s.repo.GetProductForCheckout(ctx, item.ProductID)
		if err != nil {
			log.Error("failed to fetch product for checkout",
				zap.String("product_id", item.ProductID), zap.Error(err))
			return nil, err
		}
		if p == nil {
			return nil, utils.Invalid("product_id", "product not found: "+item.ProductID)
		}

		if item.Quantity < p.MOQ {
			return nil, utils.Invalid("quantity", fmt.Sprintf(
				"quantity %d is below MOQ of %d for product %s",
				item.Quantity, p.MOQ, p.Name,
			))
		}

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	buyerName, err := s.repo.GetBuyerName(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	order := &Order{
		BuyerID:     buyerID,
		OrderNumber: utils.GenerateOrderNumber(buyerName),
		Status:      StatusPending,
		TotalCost:   &total,
		Items:       orderItems,
	}

	if err := s.repo.CreateOrderTx(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("total_cost", total.String()),
	)
	return order, nil
}

func (s *service) ListForBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	if buyerID == "" {
		return nil, ErrUnauthorized
	}

	orders, err := s.repo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		decorateInstructions(o)
	}
	return orders, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	decorateInstructions(o)
	return o, nil
}

func decorateInstructions(o *Order) {
	if o.Status != StatusApproved || o.PaymentMode == nil || o.TotalCost == nil {
		return
	}
	o.PaymentInstructions = PaymentInstructions(*o.PaymentMode, *o.TotalCost)
}

func validateApprove(input ApproveInput) error {
	switch {
	case !input.TotalCost.IsPositive():
		return utils.Invalid("total_cost", "total_cost must be a positive number")
	case strings.TrimSpace(input.PaymentTerms) == "":
		return utils.Invalid("payment_terms", "payment_terms is required")
	case strings.TrimSpace(input.PaymentMode) == "":
		return utils.Invalid("payment_mode", "payment_mode is required")
	case strings.TrimSpace(input.DeliveryMode) == "":
		return utils.Invalid("delivery_mode", "delivery_mode is required")
	case strings.TrimSpace(input.DeliveryTimeline) == "":
		return utils.Invalid("delivery_timeline", "delivery_timeline is required")
	}

	if input.AdminContactEmail != nil && *input.AdminContactEmail != "" &&
		!utils.ValidEmail(*input.AdminContactEmail) {
		return utils.Invalid("admin_contact_email", "invalid email format")
	}

	return nil
}

// Approve moves a PENDING order to APPROVED with the supplied commercial
// terms. Terminal orders are never re-transitioned; corrections go through
// Update instead.
func (s *service) Approve(ctx context.Context, id string, input ApproveInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Approve"),
		zap.String("order_id", id),
	)

	if err := validateApprove(input); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusPending {
		log.Warn("approve rejected: order not pending",
			zap.String("status", string(current.Status)))
		return nil, ErrOrderNotPending
	}

	o, err := s.repo.Approve(ctx, id, input)
	if err != nil {
		return nil, err
	}

	metrics.OrdersApproved.Inc()
	log.Info("order approved", zap.String("order_number", o.OrderNumber))
	return o, nil
}

func (s *service) Reject(ctx context.Context, id string, adminNotes *string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Reject"),
		zap.String("order_id", id),
	)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != StatusPending {
		log.Warn("reject rejected: order not pending",
			zap.String("status", string(current.Status)))
		return nil, ErrOrderNotPending
	}

	o, err := s.repo.Reject(ctx, id, adminNotes)
	if err != nil {
		return nil, err
	}

	metrics.OrdersRejected.Inc()
	log.Info("order rejected", zap.String("order_number", o.OrderNumber))
	return o, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (*Order, error) {
	if input.Status != nil && !ValidStatus(*input.Status) {
		return nil, utils.Invalid("status", "invalid status: "+string(*input.Status))
	}
	if input.TotalCost != nil && !input.TotalCost.IsPositive() {
		return nil, utils.Invalid("total_cost", "total_cost must be a positive number")
	}
	if input.AdminContactEmail != nil && *input.AdminContactEmail != "" &&
		!utils.ValidEmail(*input.AdminContactEmail) {
		return nil, utils.Invalid("admin_contact_email", "invalid email format")
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats recomputes the dashboard aggregates on every call; nothing here is
// cached or derived state.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return s.repo.Stats(ctx, firstOfMonth)
}
