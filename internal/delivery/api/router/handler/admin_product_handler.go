package handler

import (
	"mime/multipart"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageFormField = "image"

// AdminProductHandlerParams holds dependencies for AdminProductHandler, injected by Fx.
type AdminProductHandlerParams struct {
	fx.In

	ProductAdminUC usecase.ProductAdminUsecase
}

// AdminProductHandler serves catalog management for the admin.
type AdminProductHandler struct {
	productAdminUC usecase.ProductAdminUsecase
}

// NewAdminProductHandler is the constructor for AdminProductHandler
func NewAdminProductHandler(params AdminProductHandlerParams) *AdminProductHandler {
	return &AdminProductHandler{productAdminUC: params.ProductAdminUC}
}

// ProductMutationResponse reports a catalog change.
type ProductMutationResponse struct {
	Message string          `json:"message"`
	Product *entity.Product `json:"product"`
}

// ListProducts handles GET /api/v1/admin/products
func (h *AdminProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productAdminUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/admin/products/:id
func (h *AdminProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productAdminUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles the multipart POST /api/v1/admin/products
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return response.BindingError(c, "Invalid image upload")
	}
	defer closeImage()

	product, err := h.productAdminUC.CreateProduct(c.Request().Context(), admin.UserID, &input, image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ProductMutationResponse{Message: "product created", Product: product})
}

// UpdateProduct handles PUT /api/v1/admin/products/:id
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.productAdminUC.UpdateProduct(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProductMutationResponse{Message: "Product updated successfully", Product: product})
}

// UpdateProductImage handles the multipart PUT /api/v1/admin/products/:id/image
func (h *AdminProductHandler) UpdateProductImage(c echo.Context) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return response.BindingError(c, "Invalid image upload")
	}
	defer closeImage()

	product, err := h.productAdminUC.UpdateProductImage(c.Request().Context(), c.Param("id"), image)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProductMutationResponse{Message: "Product Image updated successfully", Product: product})
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productAdminUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "product removed")
}

// RequestUploadURL handles POST /api/v1/admin/uploads
func (h *AdminProductHandler) RequestUploadURL(c echo.Context) error {
	var input usecase.UploadURLInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid upload input")
	}

	upload, err := h.productAdminUC.RequestUploadURL(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, upload)
}

// formImage opens the uploaded image. A missing file yields a nil upload so the
// use case reports it as a validation failure.
func formImage(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errors.Wrap(err, "read image form file")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "open image form file")
	}

	return imageUpload(header, file), func() { _ = file.Close() }, nil
}

func imageUpload(header *multipart.FileHeader, file multipart.File) *usecase.ImageUpload {
	return &usecase.ImageUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}
}
