package impl

import (
	"bytes"
	"context"
	"io"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"
	mockSvc "shop/internal/mocks/service"
	"shop/internal/usecase"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	repo     *mockRepo.MockProductRepository
	exporter *mockSvc.MockProductExporter
	service  usecase.ProductUsecase
}

func newProductServiceFixture(t *testing.T) *productServiceFixture {
	t.Helper()

	repo := mockRepo.NewMockProductRepository(t)
	exporter := mockSvc.NewMockProductExporter(t)

	return &productServiceFixture{
		repo:     repo,
		exporter: exporter,
		service: NewProductService(ProductServiceParams{
			ProductRepo: repo,
			Exporter:    exporter,
			Logger:      newDiscardLogger(),
		}),
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:     "Ball",
		Price:    decimal.RequireFromString("9.99"),
		Category: "Soccer",
		Quantity: 10,
	}

	f.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = "64b7f0c2a1b2c3d4e5f60718"
		}).
		Return(nil)

	product, err := f.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", product.ID)
	assert.Equal(t, "Ball", product.Name)
	assert.True(t, input.Price.Equal(product.Price))
	assert.Equal(t, "Soccer", product.Category)
	assert.Equal(t, 10, product.Quantity)
}

func TestProductService_CreateProduct_StoreFailure(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to create product")

	f.repo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)

	product, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Ball"})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, dbErr)
}

func TestProductService_GetProduct(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: repository.ErrProductNotFound, wantErr: domainerrors.ErrProductNotFound},
		{name: "malformed id", repoErr: repository.ErrInvalidID, wantErr: domainerrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductServiceFixture(t)
			ctx := context.Background()
			stored := &entity.Product{ID: "p1", Name: "Racket"}

			if tt.repoErr != nil {
				f.repo.EXPECT().FindByID(ctx, "p1").Return(nil, tt.repoErr)
			} else {
				f.repo.EXPECT().FindByID(ctx, "p1").Return(stored, nil)
			}

			product, err := f.service.GetProduct(ctx, "p1")
			if tt.wantErr != nil {
				assert.Nil(t, product)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, product)
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	stored := []*entity.Product{{ID: "p1"}, {ID: "p2"}}

	f.repo.EXPECT().List(ctx).Return(stored, nil)

	products, err := f.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, products)
}

func TestProductService_UpdateProduct_PriceOnly(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	price := decimal.RequireFromString("24.50")

	updated := &entity.Product{ID: "p1", Name: "Ball", Price: price, Category: "Soccer", Quantity: 10}
	f.repo.EXPECT().
		Update(ctx, "p1", repository.ProductUpdate{Price: &price}).
		Return(updated, nil)

	product, err := f.service.UpdateProduct(ctx, "p1", &usecase.UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, updated, product)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Update(ctx, "p1", mock.Anything).Return(nil, repository.ErrProductNotFound)

	product, err := f.service.UpdateProduct(ctx, "p1", &usecase.UpdateProductInput{Name: ptr("x")})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_EmptyInputKeepsProduct(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("empty update returns the stored product unchanged", prop.ForAll(
		func(name, category string, cents int64, quantity int) bool {
			f := newProductServiceFixture(t)
			ctx := context.Background()
			stored := &entity.Product{
				ID:       "p1",
				Name:     name,
				Price:    decimal.New(cents, -2),
				Category: category,
				Quantity: quantity,
			}
			f.repo.EXPECT().Update(ctx, "p1", repository.ProductUpdate{}).Return(stored, nil).Once()

			product, err := f.service.UpdateProduct(ctx, "p1", &usecase.UpdateProductInput{})
			if err != nil {
				return false
			}

			return product.Name == name && product.Category == category &&
				product.Price.Equal(stored.Price) && product.Quantity == quantity
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Int64Range(0, 1_000_000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().Delete(ctx, "p1").Return(nil).Once()
	f.repo.EXPECT().Delete(ctx, "p2").Return(repository.ErrProductNotFound).Once()

	require.NoError(t, f.service.DeleteProduct(ctx, "p1"))
	assert.ErrorIs(t, f.service.DeleteProduct(ctx, "p2"), domainerrors.ErrProductNotFound)
}

func TestProductService_ExportProducts(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()
	stored := []*entity.Product{{ID: "p1"}}
	var buf bytes.Buffer

	f.repo.EXPECT().List(ctx).Return(stored, nil)
	f.exporter.EXPECT().
		Export(&buf, stored).
		RunAndReturn(func(w io.Writer, _ []*entity.Product) error {
			_, err := w.Write([]byte("xlsx"))
			return err
		})
	f.exporter.EXPECT().FileName().Return("produits.xlsx")
	f.exporter.EXPECT().ContentType().Return("application/test")

	file, err := f.service.ExportProducts(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", buf.String())
	assert.Equal(t, &usecase.ExportedFile{FileName: "produits.xlsx", ContentType: "application/test"}, file)
}

func TestProductService_ExportProducts_WriterFailure(t *testing.T) {
	f := newProductServiceFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().List(ctx).Return([]*entity.Product{}, nil)
	f.exporter.EXPECT().Export(mock.Anything, mock.Anything).Return(errors.New("broken pipe"))

	file, err := f.service.ExportProducts(ctx, io.Discard)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
