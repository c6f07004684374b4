package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, q repository.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Featured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]string)
	return c, args.Error(1)
}

func newCatalog() *usecase.ProductUsecase {
	return usecase.NewProductUsecase(infraRepo.NewStaticProductRepository(infraRepo.SampleProducts()))
}

func TestListProductsAll(t *testing.T) {
	out, err := newCatalog().ListProducts(context.Background(), usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, 12, out.Total)
	assert.Equal(t, "all", out.Category)
	assert.Equal(t, int64(1), out.Items[0].ID)
}

// Test: カテゴリは大文字小文字を区別しない
func TestListProductsByCategory(t *testing.T) {
	out, err := newCatalog().ListProducts(context.Background(), usecase.ListProductsInput{Category: "Herbs"})

	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	for _, p := range out.Items {
		assert.Equal(t, "herbs", p.Category)
	}
}

// Test: 検索はnameとdescription
func TestListProductsSearch(t *testing.T) {
	out, err := newCatalog().ListProducts(context.Background(), usecase.ListProductsInput{Q: "GUACAMOLE"})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Organic Avocados", out.Items[0].Name)

	out, err = newCatalog().ListProducts(context.Background(), usecase.ListProductsInput{Category: "fruits", Q: "organic"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestListProductsQueryTooLong(t *testing.T) {
	_, err := newCatalog().ListProducts(context.Background(), usecase.ListProductsInput{Q: strings.Repeat("a", 101)})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestGetProductDetail(t *testing.T) {
	p, err := newCatalog().GetProductDetail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Red Bell Peppers", p.Name)
	assert.Equal(t, "3.49", p.Price.StringFixed(2))

	_, err = newCatalog().GetProductDetail(context.Background(), 999)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	_, err = newCatalog().GetProductDetail(context.Background(), 0)
	he, ok = usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestFeaturedProducts(t *testing.T) {
	items, err := newCatalog().FeaturedProducts(context.Background())
	require.NoError(t, err)

	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}

// Test: リポジトリのエラーは500
func TestListProductsRepositoryError(t *testing.T) {
	productRepo := new(MockProductRepository)
	productRepo.On("List", mock.Anything, repository.ProductListQuery{Category: "all"}).
		Return(nil, errors.New("connection reset"))

	_, err := usecase.NewProductUsecase(productRepo).ListProducts(context.Background(), usecase.ListProductsInput{})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	productRepo.AssertExpectations(t)
}
