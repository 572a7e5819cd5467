package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	"github.com/antu41/ECommerceInventory/internal/core/domain"
	portsrepo "github.com/antu41/ECommerceInventory/internal/core/ports/repositories"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/core/services"
	"github.com/antu41/ECommerceInventory/internal/dto"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) FindProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewProductService(suite.mockProductRepo, suite.mockCategoryRepo)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	category := &domain.Category{CategoryID: categoryID, Name: "Electronics"}
	req := dto.CreateProductRequest{
		Name:       "Mechanical Keyboard",
		Price:      decimal.NewFromFloat(129.99),
		Stock:      25,
		CategoryID: categoryID,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(category, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name &&
			p.CategoryID == categoryID &&
			p.CategoryName == category.Name &&
			p.Price.Equal(req.Price)
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, "images/kb.png")

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal("Electronics", product.CategoryName)
	suite.Equal("images/kb.png", product.ImagePath)

	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateProductRequest{
		Name:       "Orphan Product",
		Price:      decimal.NewFromInt(10),
		CategoryID: categoryID,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.CreateProduct(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, productID)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_PaginationDefaults() {
	ctx := context.Background()
	expected := []domain.Product{{ProductID: uuid.NewString(), Name: "Widget"}}

	suite.mockProductRepo.On("FindProducts", ctx, mock.MatchedBy(func(f portsrepo.ProductFilter) bool {
		return f.Limit == 10 && f.Offset == 0
	})).Return(expected, nil).Once()

	products, err := suite.service.ListProducts(ctx, dto.ListProductsParams{})

	suite.Require().NoError(err)
	suite.Equal(expected, products)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_OffsetFromPage() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProducts", ctx, mock.MatchedBy(func(f portsrepo.ProductFilter) bool {
		return f.Limit == 20 && f.Offset == 40
	})).Return([]domain.Product{}, nil).Once()

	_, err := suite.service.ListProducts(ctx, dto.ListProductsParams{Page: 3, Limit: 20})

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestSearchProducts_EmptyQuery() {
	ctx := context.Background()

	products, err := suite.service.SearchProducts(ctx, "")

	suite.Require().NoError(err)
	suite.Empty(products)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SearchProducts", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialFields() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID:    productID,
		Name:         "Old Name",
		Description:  "Old description",
		Price:        decimal.NewFromInt(50),
		Stock:        5,
		CategoryID:   uuid.NewString(),
		CategoryName: "Electronics",
	}
	newName := "New Name"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == newName && p.Description == "Old description" && p.Stock == 5
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, productID, req, "")

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.Equal("Electronics", product.CategoryName)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_ChangeCategory() {
	ctx := context.Background()
	productID := uuid.NewString()
	newCategoryID := uuid.NewString()
	existing := &domain.Product{
		ProductID:    productID,
		Name:         "Widget",
		CategoryID:   uuid.NewString(),
		CategoryName: "Old Category",
	}
	newCategory := &domain.Category{CategoryID: newCategoryID, Name: "New Category"}
	req := dto.UpdateProductRequest{CategoryID: &newCategoryID}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, newCategoryID).Return(newCategory, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.CategoryID == newCategoryID && p.CategoryName == "New Category"
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, productID, req, "")

	suite.Require().NoError(err)
	suite.Equal(newCategoryID, product.CategoryID)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_ReturnsImagePath() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{ProductID: productID, ImagePath: "images/gone.png"}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("DeleteProduct", ctx, productID).Return(nil).Once()

	imagePath, err := suite.service.DeleteProduct(ctx, productID)

	suite.Require().NoError(err)
	suite.Equal("images/gone.png", imagePath)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	imagePath, err := suite.service.DeleteProduct(ctx, productID)

	suite.Require().Error(err)
	suite.Empty(imagePath)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "DeleteProduct", mock.Anything, mock.Anything)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
