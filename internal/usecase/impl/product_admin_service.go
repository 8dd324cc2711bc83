package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productAdminService implements the ProductAdminUsecase interface.
type productAdminService struct {
	productRepo    repository.ProductRepository
	storage        service.ObjectStorage
	pageCache      service.PageCache
	validator      *validation.Validator
	maxUploadBytes int64
	logger         *slog.Logger
}

// ProductAdminServiceParams holds dependencies for ProductAdminService, injected by Fx.
type ProductAdminServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Storage     service.ObjectStorage
	PageCache   service.PageCache
	Validator   *validation.Validator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductAdminService is the constructor for productAdminService.
func NewProductAdminService(params ProductAdminServiceParams) usecase.ProductAdminUsecase {
	maxUploadBytes := validation.MaxImageBytes
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxUploadBytes = params.Config.Storage.MaxUploadBytes
	}

	return &productAdminService{
		productRepo:    params.ProductRepo,
		storage:        params.Storage,
		pageCache:      params.PageCache,
		validator:      params.Validator,
		maxUploadBytes: maxUploadBytes,
		logger:         params.Logger,
	}
}

func (srv *productAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every product, newest first.
func (srv *productAdminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{Sort: entity.ProductSortNewest})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a product for editing.
func (srv *productAdminService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	return srv.findProduct(ctx, uid)
}

func (srv *productAdminService) findProduct(ctx context.Context, uid uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct validates the input, uploads the image and creates the product.
func (srv *productAdminService) CreateProduct(ctx context.Context, adminID string, input *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := srv.validateImage(image); err != nil {
		return nil, err
	}

	imageURL, err := srv.storage.PutObject(ctx, image.FileName, image.ContentType, image.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product image")
	}

	product := &entity.Product{
		UID:         uuid.New(),
		Name:        input.Name,
		Company:     input.Company,
		Description: input.Description,
		Price:       input.Price,
		Image:       imageURL,
		Featured:    input.Featured,
		CreatedBy:   adminID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.removeObject(ctx, imageURL)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.UID.String()), slog.String("adminID", adminID))
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathAdminProducts)

	return product, nil
}

// UpdateProduct overwrites the editable fields.
func (srv *productAdminService) UpdateProduct(ctx context.Context, productID string, input *usecase.ProductInput) (*entity.Product, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, uid)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Company = input.Company
	product.Description = input.Description
	product.Price = input.Price
	product.Featured = input.Featured

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("productID", product.UID.String()))
	srv.revalidateProduct(ctx, product.UID)

	return product, nil
}

// UpdateProductImage uploads a new image and deletes the old object.
func (srv *productAdminService) UpdateProductImage(ctx context.Context, productID string, image *usecase.ImageUpload) (*entity.Product, error) {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	if err := srv.validateImage(image); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, uid)
	if err != nil {
		return nil, err
	}

	imageURL, err := srv.storage.PutObject(ctx, image.FileName, image.ContentType, image.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product image")
	}

	oldImage := product.Image
	product.Image = imageURL
	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.removeObject(ctx, imageURL)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product image")
	}
	srv.removeObject(ctx, oldImage)

	srv.log(ctx).Info("Product image updated", slog.String("productID", product.UID.String()))
	srv.revalidateProduct(ctx, product.UID)

	return product, nil
}

// DeleteProduct removes the product and, best-effort, its image.
func (srv *productAdminService) DeleteProduct(ctx context.Context, productID string) error {
	uid, err := parseUID(productID, domainerrors.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := srv.findProduct(ctx, uid)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}
	srv.removeObject(ctx, product.Image)

	srv.log(ctx).Info("Product deleted", slog.String("productID", uid.String()))
	srv.revalidateProduct(ctx, uid)

	return nil
}

// RequestUploadURL signs a direct upload URL for a new image object.
func (srv *productAdminService) RequestUploadURL(ctx context.Context, input *usecase.UploadURLInput) (*service.UploadURL, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.ValidateImage(1, input.ContentType, srv.maxUploadBytes); err != nil {
		return nil, err
	}

	upload, err := srv.storage.RequestUploadURL(ctx, input.FileName, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign upload URL")
	}

	return upload, nil
}

func (srv *productAdminService) validateImage(image *usecase.ImageUpload) error {
	if image == nil || image.Content == nil {
		return domainerrors.NewValidationError("expected a file")
	}

	return validation.ValidateImage(image.Size, image.ContentType, srv.maxUploadBytes)
}

// removeObject deletes an image object. An orphaned object is only wasted storage.
func (srv *productAdminService) removeObject(ctx context.Context, urlOrName string) {
	if urlOrName == "" {
		return
	}

	if err := srv.storage.DeleteObject(ctx, urlOrName); err != nil {
		srv.log(ctx).Warn("Failed to delete image object", slog.String("object", urlOrName), slog.Any("error", err))
	}
}

func (srv *productAdminService) revalidateProduct(ctx context.Context, uid uuid.UUID) {
	revalidate(ctx, srv.pageCache, srv.log(ctx),
		constants.PathAdminProducts,
		constants.AdminProductEditPath(uid.String()),
		constants.ProductPath(uid.String()),
	)
}
