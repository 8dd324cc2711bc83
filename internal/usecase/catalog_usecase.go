package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SearchProductsInput filters the public catalog listing.
type SearchProductsInput struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name        string `json:"name" form:"name" validate:"min=2,max=100"`
	Company     string `json:"company" form:"company" validate:"required"`
	Description string `json:"description" form:"description" validate:"minwords=10,maxwords=1000"`
	Price       int64  `json:"price" form:"price" validate:"min=0"`
	Featured    bool   `json:"featured" form:"featured"`
}

// ValidationMessages overrides the default failure messages.
func (ProductInput) ValidationMessages() map[string]string {
	return map[string]string{
		"name.min":             "name must be at least 2 characters",
		"name.max":             "name must be less than 100 characters",
		"company.required":     "Company is required",
		"description.minwords": "description must be between 10 and 1000 words",
		"description.maxwords": "description must be between 10 and 1000 words",
		"price.min":            "price must be a positive number",
	}
}

// ImageUpload is an uploaded product image.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadURLInput requests a signed upload URL.
type UploadURLInput struct {
	FileName    string `json:"fileName" validate:"required,max=200"`
	ContentType string `json:"contentType" validate:"required"`
}

// CatalogUsecase is the public, read-only catalog surface.
type CatalogUsecase interface {
	// GetProduct returns a product by its public identifier.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListFeatured returns the featured products.
	ListFeatured(ctx context.Context) ([]*entity.Product, error)

	// Search lists products whose name or company contains the term, in the requested order.
	Search(ctx context.Context, input *SearchProductsInput) ([]*entity.Product, error)

	// ProductQR renders a PNG QR code pointing at the product page.
	ProductQR(ctx context.Context, productID string) ([]byte, error)
}

// ProductAdminUsecase is the admin-only catalog management surface.
type ProductAdminUsecase interface {
	// ListProducts returns every product, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a product for editing.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// CreateProduct validates the input, uploads the image and creates the product.
	CreateProduct(ctx context.Context, adminID string, input *ProductInput, image *ImageUpload) (*entity.Product, error)

	// UpdateProduct overwrites the editable fields.
	UpdateProduct(ctx context.Context, productID string, input *ProductInput) (*entity.Product, error)

	// UpdateProductImage uploads a new image and deletes the old object.
	UpdateProductImage(ctx context.Context, productID string, image *ImageUpload) (*entity.Product, error)

	// DeleteProduct removes the product and, best-effort, its image.
	DeleteProduct(ctx context.Context, productID string) error

	// RequestUploadURL signs a direct upload URL for a new image object.
	RequestUploadURL(ctx context.Context, input *UploadURLInput) (*service.UploadURL, error)
}
