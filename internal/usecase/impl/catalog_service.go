package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	pageCache   service.PageCache
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	PageCache   service.PageCache
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		pageCache:   params.PageCache,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProduct returns a product by its public identifier, served from the page cache when warm.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	cacheKey := constants.ProductPath(uid.String())

	var cached entity.Product
	hit, err := srv.pageCache.Get(ctx, cacheKey, &cached)
	if err != nil {
		srv.log(ctx).Warn("Page cache read failed", slog.String("path", cacheKey), slog.Any("error", err))
	}
	if hit {
		return &cached, nil
	}

	product, err := srv.productRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.pageCache.Set(ctx, cacheKey, product); err != nil {
		srv.log(ctx).Warn("Page cache write failed", slog.String("path", cacheKey), slog.Any("error", err))
	}

	return product, nil
}

// ListFeatured returns the featured products.
func (srv *catalogService) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{FeaturedOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// Search lists products whose name or company contains the term, in the requested order.
func (srv *catalogService) Search(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{Sort: entity.ProductSortNewest}
	if input != nil {
		filter.Search = input.Search
		filter.Sort = entity.ParseProductSort(input.Sort)
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ProductQR renders a PNG QR code pointing at the product page.
func (srv *catalogService) ProductQR(ctx context.Context, productID string) ([]byte, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByUID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	png, err := srv.qrService.GenerateProductQR(uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}
