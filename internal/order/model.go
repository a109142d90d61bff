package order

import (
	"time"

	"ramba-be/internal/product"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "PENDING"
	StatusApproved OrderStatus = "APPROVED"
	StatusRejected OrderStatus = "REJECTED"
)

func ValidStatus(s OrderStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Order struct {
	ID          string      `json:"id"`
	BuyerID     string      `json:"buyer_id"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`

	TotalCost *decimal.Decimal `json:"total_cost"`

	PaymentTerms      *string `json:"payment_terms"`
	PaymentMode       *string `json:"payment_mode"`
	DeliveryMode      *string `json:"delivery_mode"`
	DeliveryTimeline  *string `json:"delivery_timeline"`
	AdminNotes        *string `json:"admin_notes"`
	AdminContactEmail *string `json:"admin_contact_email"`
	AdminContactPhone *string `json:"admin_contact_phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem   `json:"items"`
	Buyer *BuyerSummary `json:"buyer,omitempty"`

	// PaymentInstructions is derived on read for approved orders; it is
	// never persisted.
	PaymentInstructions []string `json:"payment_instructions,omitempty"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   *ProductSummary `json:"product,omitempty"`
}

// ProductSummary is the minimal product projection nested under order items.
type ProductSummary struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	ProductCode string              `json:"product_code"`
	ProductType product.ProductType `json:"product_type"`
	Images      []string            `json:"images"`
	Price       *decimal.Decimal    `json:"price,omitempty"`
}

type BuyerSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Country     string `json:"country"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutProduct is what checkout needs to know about a product: its price
// for the total and its MOQ for gating.
type CheckoutProduct struct {
	ID    string
	Name  string
	Price decimal.Decimal
	MOQ   int
}

type ApproveInput struct {
	TotalCost        decimal.Decimal `json:"total_cost"`
	PaymentTerms     string          `json:"payment_terms"`
	PaymentMode      string          `json:"payment_mode"`
	DeliveryMode     string          `json:"delivery_mode"`
	DeliveryTimeline string          `json:"delivery_timeline"`

	AdminNotes        *string `json:"admin_notes,omitempty"`
	AdminContactEmail *string `json:"admin_contact_email,omitempty"`
	AdminContactPhone *string `json:"admin_contact_phone,omitempty"`
}

// UpdateInput is the admin correction form. Nil means "leave as-is", never
// "clear".
type UpdateInput struct {
	Status            *OrderStatus     `json:"status,omitempty"`
	TotalCost         *decimal.Decimal `json:"total_cost,omitempty"`
	PaymentTerms      *string          `json:"payment_terms,omitempty"`
	PaymentMode       *string          `json:"payment_mode,omitempty"`
	DeliveryMode      *string          `json:"delivery_mode,omitempty"`
	DeliveryTimeline  *string          `json:"delivery_timeline,omitempty"`
	AdminNotes        *string          `json:"admin_notes,omitempty"`
	AdminContactEmail *string          `json:"admin_contact_email,omitempty"`
	AdminContactPhone *string          `json:"admin_contact_phone,omitempty"`
}

type Stats struct {
	TotalPendingOrders int             `json:"totalPendingOrders"`
	MonthlyRevenue     decimal.Decimal `json:"monthlyRevenue"`
	ActiveBuyers       int             `json:"activeBuyers"`
}
