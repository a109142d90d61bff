package product

import (
	"context"
	"time"

	"ramba-be/internal/logger"
	"ramba-be/internal/metrics"
	"ramba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, id string, input NewProduct) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)
	start := time.Now()

	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 12
	} else if opts.Limit > 100 {
		opts.Limit = 100
	}

	if opts.Type != nil && !ValidType(*opts.Type) {
		return nil, ErrInvalidType
	}

	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit

	log.Info("product list fetched",
		zap.Int("count", len(products)),
		zap.Int("total", total),
		zap.Int("page", opts.Page),
		zap.Duration("duration", time.Since(start)),
	)

	return &ListResult{
		Products: products,
		Metadata: ListMetadata{
			Total:       total,
			Page:        opts.Page,
			Limit:       opts.Limit,
			TotalPages:  totalPages,
			HasNextPage: opts.Page*opts.Limit < total,
			HasPrevPage: opts.Page > 1,
		},
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func validateInput(input NewProduct) error {
	switch {
	case input.Name == "":
		return utils.Invalid("name", "name is required")
	case !ValidType(input.ProductType):
		return ErrInvalidType
	case len(input.Materials) == 0:
		return utils.Invalid("materials", "at least one material is required")
	case input.Description == "":
		return utils.Invalid("description", "description is required")
	case !input.Price.IsPositive():
		return utils.Invalid("price", "price must be a positive number")
	case input.MOQ <= 0:
		return utils.Invalid("moq", "moq must be a positive number")
	case len(input.Images) == 0:
		return utils.Invalid("images", "at least one image is required")
	}

	if input.Width != nil && !input.Width.IsPositive() {
		return utils.Invalid("width", "width must be a valid positive number")
	}
	if input.Length != nil && !input.Length.IsPositive() {
		return utils.Invalid("length", "length must be a valid positive number")
	}

	return nil
}

// Create allocates a product code and inserts the product. Allocation is
// check-then-act: two concurrent creates for the same category can both see
// a candidate as free, so the unique constraint on product_code is the real
// arbiter and a 23505 on it means "allocate again", never a caller error.
func (s *service) Create(ctx context.Context, input NewProduct) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if err := validateInput(input); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < createRetryLimit; attempt++ {
		code, err := nextProductCode(ctx, s.repo, input.ProductType)
		if err != nil {
			return nil, err
		}

		p, err := s.repo.Create(ctx, input, code)
		if err == nil {
			log.Info("product created",
				zap.String("product_id", p.ID),
				zap.String("product_code", p.ProductCode),
			)
			return p, nil
		}

		if !isCodeCollision(err) {
			log.Error("failed to create product", zap.Error(err))
			return nil, err
		}

		metrics.CodeCollisions.Inc()
		log.Warn("product code collision, reallocating",
			zap.String("product_code", code),
			zap.Int("attempt", attempt+1),
		)
	}

	log.Error("product code allocation exhausted retries",
		zap.String("product_type", string(input.ProductType)),
	)
	return nil, ErrCodeContention
}

func (s *service) Update(ctx context.Context, id string, input NewProduct) (*Product, error) {
	if id == "" {
		return nil, utils.Invalid("id", "product id is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
