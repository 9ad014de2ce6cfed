package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "shop/internal/delivery/context"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	exporter    service.ProductExporter
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Exporter    service.ProductExporter
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		exporter:    params.Exporter,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores a new catalogue entry.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Quantity: input.Quantity,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID))

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get product")
	}

	return product, nil
}

// UpdateProduct applies the non-nil fields. Quantity is not editable here.
func (srv *productService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.Update(ctx, id, repository.ProductUpdate{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.String("productID", id), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.String("productID", id))

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.String("productID", id), slog.Any("error", err))

		return translateRepoError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))

	return nil
}

// ExportProducts renders the current catalogue through the configured exporter.
func (srv *productService) ExportProducts(ctx context.Context, w io.Writer) (*usecase.ExportedFile, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to load products for export")
	}

	if err := srv.exporter.Export(w, products); err != nil {
		srv.log(ctx).Error("Failed to export products", slog.Int("count", len(products)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to export products")
	}

	srv.log(ctx).Debug("Products exported", slog.Int("count", len(products)))

	return &usecase.ExportedFile{
		FileName:    srv.exporter.FileName(),
		ContentType: srv.exporter.ContentType(),
	}, nil
}
