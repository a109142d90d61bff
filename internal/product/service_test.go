package product

import (
	"context"
	"errors"
	"testing"

	"ramba-be/internal/utils"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]Product, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Product), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) LatestCodeByType(ctx context.Context, pt ProductType) (string, error) {
	args := m.Called(ctx, pt)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProduct, code string) (*Product, error) {
	args := m.Called(ctx, input, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input NewProduct) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateInput() NewProduct {
	return NewProduct{
		Name:        "Kashmiri Pashmina Shawl",
		ProductType: TypeShawl,
		Materials:   []string{"Pashmina"},
		Description: "Hand-woven pashmina shawl",
		Price:       decimal.NewFromInt(120),
		MOQ:         25,
		Images:      []string{"https://cdn.example.com/shawl-1.jpg"},
	}
}

func collisionErr() error {
	return &pq.Error{Code: "23505", Constraint: "products_product_code_key"}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		created := &Product{ID: "p1", ProductCode: "SHAWL-001", Name: input.Name}

		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("", nil)
		mockRepo.On("CodeExists", ctx, "SHAWL-001").Return(false, nil)
		mockRepo.On("Create", ctx, input, "SHAWL-001").Return(created, nil)

		p, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "SHAWL-001", p.ProductCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("CollisionRetriesWithFreshCode", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		// First allocation sees SHAWL-002 as latest; a concurrent create
		// takes SHAWL-003 between the existence check and the insert.
		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("SHAWL-002", nil).Once()
		mockRepo.On("CodeExists", ctx, "SHAWL-003").Return(false, nil).Once()
		mockRepo.On("Create", ctx, input, "SHAWL-003").Return(nil, collisionErr()).Once()

		// Second allocation sees the winner and moves on.
		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("SHAWL-003", nil).Once()
		mockRepo.On("CodeExists", ctx, "SHAWL-004").Return(false, nil).Once()
		mockRepo.On("Create", ctx, input, "SHAWL-004").
			Return(&Product{ID: "p2", ProductCode: "SHAWL-004"}, nil).Once()

		p, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "SHAWL-004", p.ProductCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RetriesExhausted", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("", nil)
		mockRepo.On("CodeExists", ctx, "SHAWL-001").Return(false, nil)
		mockRepo.On("Create", ctx, input, "SHAWL-001").Return(nil, collisionErr())

		_, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, ErrCodeContention)
		mockRepo.AssertNumberOfCalls(t, "Create", createRetryLimit)
	})

	t.Run("NonCollisionErrorIsNotRetried", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("", nil)
		mockRepo.On("CodeExists", ctx, "SHAWL-001").Return(false, nil)
		mockRepo.On("Create", ctx, input, "SHAWL-001").Return(nil, errors.New("db error"))

		_, err := svc.Create(ctx, input)

		assert.Error(t, err)
		assert.Equal(t, "db error", err.Error())
		mockRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("OtherUniqueConstraintIsNotACollision", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		mockRepo.On("LatestCodeByType", ctx, TypeShawl).Return("", nil)
		mockRepo.On("CodeExists", ctx, "SHAWL-001").Return(false, nil)
		mockRepo.On("Create", ctx, input, "SHAWL-001").
			Return(nil, &pq.Error{Code: "23505", Constraint: "products_pkey"})

		_, err := svc.Create(ctx, input)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCodeContention)
		mockRepo.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	neg := decimal.NewFromInt(-5)

	tests := []struct {
		name   string
		mutate func(*NewProduct)
		field  string
	}{
		{"MissingName", func(p *NewProduct) { p.Name = "" }, "name"},
		{"NoMaterials", func(p *NewProduct) { p.Materials = nil }, "materials"},
		{"MissingDescription", func(p *NewProduct) { p.Description = "" }, "description"},
		{"ZeroPrice", func(p *NewProduct) { p.Price = decimal.Zero }, "price"},
		{"NegativePrice", func(p *NewProduct) { p.Price = neg }, "price"},
		{"ZeroMOQ", func(p *NewProduct) { p.MOQ = 0 }, "moq"},
		{"NoImages", func(p *NewProduct) { p.Images = nil }, "images"},
		{"NegativeWidth", func(p *NewProduct) { p.Width = &neg }, "width"},
		{"NegativeLength", func(p *NewProduct) { p.Length = &neg }, "length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewService(mockRepo)

			input := validCreateInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)

			var vErr *utils.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}

	t.Run("UnknownType", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validCreateInput()
		input.ProductType = "BLANKET"

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsPageAndLimit", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.MatchedBy(func(opts ListOptions) bool {
			return opts.Page == 1 && opts.Limit == 12
		})).Return([]Product{}, 0, nil)

		res, err := svc.List(ctx, ListOptions{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Metadata.Page)
		assert.Equal(t, 12, res.Metadata.Limit)
	})

	t.Run("CapsLimit", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.MatchedBy(func(opts ListOptions) bool {
			return opts.Limit == 100
		})).Return([]Product{}, 0, nil)

		_, err := svc.List(ctx, ListOptions{Limit: 500})
		assert.NoError(t, err)
	})

	t.Run("InvalidType", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := ProductType("BLANKET")
		_, err := svc.List(ctx, ListOptions{Type: &bad})

		assert.ErrorIs(t, err, ErrInvalidType)
		mockRepo.AssertNotCalled(t, "List")
	})

	t.Run("PaginationMetadata", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		products := make([]Product, 12)
		mockRepo.On("List", ctx, mock.Anything).Return(products, 25, nil)

		res, err := svc.List(ctx, ListOptions{Page: 2, Limit: 12})

		assert.NoError(t, err)
		assert.Equal(t, 25, res.Metadata.Total)
		assert.Equal(t, 3, res.Metadata.TotalPages)
		assert.True(t, res.Metadata.HasNextPage)
		assert.True(t, res.Metadata.HasPrevPage)
	})

	t.Run("LastPage", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.Anything).Return([]Product{}, 25, nil)

		res, err := svc.List(ctx, ListOptions{Page: 3, Limit: 12})

		assert.NoError(t, err)
		assert.False(t, res.Metadata.HasNextPage)
		assert.True(t, res.Metadata.HasPrevPage)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.Anything).Return(nil, 0, errors.New("db error"))

		_, err := svc.List(ctx, ListOptions{})
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, "", validCreateInput())

		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		input := validCreateInput()

		updated := &Product{ID: "p1", ProductCode: "SHAWL-001", Name: input.Name}
		mockRepo.On("Update", ctx, "p1", input).Return(updated, nil)

		p, err := svc.Update(ctx, "p1", input)

		assert.NoError(t, err)
		// The code is never touched by an update.
		assert.Equal(t, "SHAWL-001", p.ProductCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Update", ctx, "missing", mock.Anything).Return(nil, ErrProductNotFound)

		_, err := svc.Update(ctx, "missing", validCreateInput())
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
