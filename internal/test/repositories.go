package test

import (
	"context"
	"time"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash, firstName, lastName string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleCustomer,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile applies non-nil fields to the stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, upd repository.ProfileUpdate) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}
	return user, nil
}

// UpdateRole switches role for stored user.
func (s *UserRepositoryStub) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Role = role
	return nil
}

// Delete removes the user from both maps.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	delete(s.Users, user.Email)
	delete(s.ByID, id)
	return nil
}

// List returns stored users as summaries.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.UserSummary, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.UserSummary
	for _, user := range s.ByID {
		result = append(result, model.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
	return result, nil
}

// CategoryRepositoryStub allows tests to customize category behaviour.
type CategoryRepositoryStub struct {
	CreateFn   func(context.Context, string, string) (*model.Category, error)
	GetFn      func(context.Context, int64) (*model.Category, error)
	ListFn     func(context.Context) ([]model.Category, error)
	UpdateFn   func(context.Context, int64, string, string) (*model.Category, error)
	DeleteFn   func(context.Context, int64) error
	ProductsFn func(context.Context, int64) ([]model.Product, error)

	Categories []model.Category
}

// Create delegates to override or appends to stored slice.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name, description string) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, description)
	}
	category := model.Category{ID: int64(len(s.Categories) + 1), Name: name, Description: description}
	s.Categories = append(s.Categories, category)
	return &category, nil
}

// GetByID returns matched category from stored slice.
func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, c := range s.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Categories, nil
}

// Update delegates to override or mutates stored slice.
func (s *CategoryRepositoryStub) Update(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, description)
	}
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories[i].Name = name
			s.Categories[i].Description = description
			return &s.Categories[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a category from the stored slice.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Products returns products via override.
func (s *CategoryRepositoryStub) Products(ctx context.Context, id int64) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, id)
	}
	return nil, nil
}

// ProductRepositoryStub allows tests to customize product behaviour.
type ProductRepositoryStub struct {
	CreateFn        func(context.Context, repository.ProductInput, []repository.ImageUpload) (*model.Product, error)
	GetFn           func(context.Context, int64) (*model.Product, error)
	ListFn          func(context.Context, model.ProductFilter) ([]model.Product, int64, error)
	UpdateFn        func(context.Context, int64, repository.ProductInput, []repository.ImageUpload) (*model.Product, error)
	DeleteFn        func(context.Context, int64) ([]string, error)
	ReplaceImagesFn func(context.Context, int64, []repository.ImageUpload) ([]string, error)
	GetImageFn      func(context.Context, int64, int64) (*model.ProductImage, error)
	DeleteImageFn   func(context.Context, int64) error

	Products []model.Product
}

// Create delegates to override or returns a product built from input.
func (s *ProductRepositoryStub) Create(ctx context.Context, in repository.ProductInput, images []repository.ImageUpload) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in, images)
	}
	product := model.Product{
		ID:         int64(len(s.Products) + 1),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		Stock:      in.Stock,
	}
	s.Products = append(s.Products, product)
	return &product, nil
}

// GetByID returns matched product from stored slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Products, int64(len(s.Products)), nil
}

// Update delegates to override.
func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, in repository.ProductInput, images []repository.ImageUpload) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in, images)
	}
	return s.GetByID(ctx, id)
}

// Delete delegates to override or removes from stored slice.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) ([]string, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ReplaceImages delegates to override.
func (s *ProductRepositoryStub) ReplaceImages(ctx context.Context, productID int64, images []repository.ImageUpload) ([]string, error) {
	if s.ReplaceImagesFn != nil {
		return s.ReplaceImagesFn(ctx, productID, images)
	}
	return nil, nil
}

// GetImage delegates to override.
func (s *ProductRepositoryStub) GetImage(ctx context.Context, productID, imageID int64) (*model.ProductImage, error) {
	if s.GetImageFn != nil {
		return s.GetImageFn(ctx, productID, imageID)
	}
	return nil, domainErrors.ErrNotFound
}

// DeleteImage delegates to override.
func (s *ProductRepositoryStub) DeleteImage(ctx context.Context, imageID int64) error {
	if s.DeleteImageFn != nil {
		return s.DeleteImageFn(ctx, imageID)
	}
	return nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, int64, []model.OrderLine, float64, model.ShippingDetails) (int64, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	GetByUserFn    func(context.Context, int64, int64) (*model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	GetFn          func(context.Context, int64) (*model.Order, error)
	CountByUserFn  func(context.Context, int64) (int64, error)
	StatsFn        func(context.Context) (*model.StoreStats, error)

	Orders      []model.Order
	StatusCalls []StatusCall
}

// StatusCall records an UpdateStatus invocation.
type StatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, lines []model.OrderLine, total float64, shipping model.ShippingDetails) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, lines, total, shipping)
	}
	order := model.Order{
		ID:          int64(len(s.Orders) + 1),
		UserID:      userID,
		TotalAmount: total,
		Status:      model.OrderStatusPending,
		Shipping:    shipping,
	}
	s.Orders = append(s.Orders, order)
	return order.ID, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusCalls = append(s.StatusCalls, StatusCall{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ListByUser returns stored orders for the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// GetByUser returns matched order scoped to the owner.
func (s *OrderRepositoryStub) GetByUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	if s.GetByUserFn != nil {
		return s.GetByUserFn(ctx, orderID, userID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID && o.UserID == userID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// Get returns matched order regardless of owner.
func (s *OrderRepositoryStub) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CountByUser counts stored orders for the user.
func (s *OrderRepositoryStub) CountByUser(ctx context.Context, userID int64) (int64, error) {
	if s.CountByUserFn != nil {
		return s.CountByUserFn(ctx, userID)
	}
	var count int64
	for _, o := range s.Orders {
		if o.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Stats returns configured stats or zero counters.
func (s *OrderRepositoryStub) Stats(ctx context.Context) (*model.StoreStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.StoreStats{Orders: int64(len(s.Orders))}, nil
}
