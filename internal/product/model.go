package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	TypeShawl   ProductType = "SHAWL"
	TypeStole   ProductType = "STOLE"
	TypeMuffler ProductType = "MUFFLER"
	TypeRumala  ProductType = "RUMALA"
	TypeDress   ProductType = "DRESS"
	TypeKimono  ProductType = "KIMONO"
	TypeCape    ProductType = "CAPE"
	TypeKaftan  ProductType = "KAFTAN"
	TypeScarf   ProductType = "SCARF"
)

var AllTypes = []ProductType{
	TypeShawl, TypeStole, TypeMuffler, TypeRumala, TypeDress,
	TypeKimono, TypeCape, TypeKaftan, TypeScarf,
}

func ValidType(t ProductType) bool {
	for _, pt := range AllTypes {
		if t == pt {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string           `json:"id"`
	ProductCode string           `json:"product_code"`
	Name        string           `json:"name"`
	ProductType ProductType      `json:"product_type"`
	SubCategory *string          `json:"sub_category,omitempty"`
	Materials   []string         `json:"materials"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	MOQ         int              `json:"moq"`
	Images      []string         `json:"images"`
	Width       *decimal.Decimal `json:"width,omitempty"`
	Length      *decimal.Decimal `json:"length,omitempty"`
	WashCare    []string         `json:"wash_care"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewProduct carries the admin create/update form. The product code is never
// part of it; codes are allocated once and immutable.
type NewProduct struct {
	Name        string           `json:"name"`
	ProductType ProductType      `json:"product_type"`
	SubCategory *string          `json:"sub_category,omitempty"`
	Materials   []string         `json:"materials"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	MOQ         int              `json:"moq"`
	Images      []string         `json:"images"`
	Width       *decimal.Decimal `json:"width,omitempty"`
	Length      *decimal.Decimal `json:"length,omitempty"`
	WashCare    []string         `json:"wash_care"`
}

type ListOptions struct {
	Type        *ProductType
	SubCategory *string
	Materials   []string
	Search      *string
	IDs         []string
	Page        int
	Limit       int
}

type ListMetadata struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type ListResult struct {
	Products []Product    `json:"products"`
	Metadata ListMetadata `json:"metadata"`
}
