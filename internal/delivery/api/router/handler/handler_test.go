package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	usecasemocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user_123"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(req *http.Request, signedIn bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if signedIn {
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: testUserID, Name: "Jane Doe", ImageURL: "https://img.example/jane.png"})
	}

	return c, rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestCartHandler_AddItem(t *testing.T) {
	cartUC := usecasemocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	productID := uuid.NewString()

	cartUC.EXPECT().
		AddItem(mock.Anything, testUserID, &usecase.AddCartItemInput{ProductID: productID, Quantity: 2}).
		Return(&entity.Cart{UserID: testUserID, NumItems: 2}, nil)

	c, rec := newContext(jsonRequest(http.MethodPost, "/api/v1/cart/items", `{"productId":"`+productID+`","amount":2}`), true)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Item added to cart", data["message"])
	assert.EqualValues(t, 2, data["cart"].(map[string]any)["num_items"])
}

func TestCartHandler_AddItemValidationFailure(t *testing.T) {
	cartUC := usecasemocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

	cartUC.EXPECT().
		AddItem(mock.Anything, testUserID, mock.Anything).
		Return(nil, domainerrors.NewValidationError("Product ID cannot be empty"))

	c, rec := newContext(jsonRequest(http.MethodPost, "/api/v1/cart/items", `{"amount":1}`), true)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "Product ID cannot be empty", errBody["message"])
}

func TestCartHandler_RemoveItemMalformedID(t *testing.T) {
	cartUC := usecasemocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

	c, rec := newContext(httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/nope", nil), true)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_UpdateItem(t *testing.T) {
	cartUC := usecasemocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	itemID := uuid.New()

	cartUC.EXPECT().
		SetItemQuantity(mock.Anything, testUserID, itemID, &usecase.SetCartItemQuantityInput{Quantity: 5}).
		Return(&entity.Cart{NumItems: 5}, nil)

	c, rec := newContext(jsonRequest(http.MethodPut, "/api/v1/cart/items/"+itemID.String(), `{"amount":5}`), true)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cart updated", decodeBody(t, rec)["data"].(map[string]any)["message"])
}

func TestCartHandler_RequiresIdentity(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: usecasemocks.NewMockCartUsecase(t)})

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), false)

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func newCheckoutHandler(t *testing.T, publicBaseURL string) (*CheckoutHandler, *usecasemocks.MockCheckoutUsecase) {
	t.Helper()

	checkoutUC := usecasemocks.NewMockCheckoutUsecase(t)
	cfg := &config.Config{Checkout: &config.CheckoutConfig{SuccessRedirect: "/orders"}}
	cfg.Site.PublicBaseURL = publicBaseURL

	return NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Config: cfg, Logger: discardLogger()}), checkoutUC
}

func TestCheckoutHandler_CreatePaymentOrigin(t *testing.T) {
	tests := []struct {
		name          string
		originHeader  string
		publicBaseURL string
		wantOrigin    string
	}{
		{name: "origin header", originHeader: "https://shop.example/", publicBaseURL: "https://public.example", wantOrigin: "https://shop.example"},
		{name: "configured public url", publicBaseURL: "https://public.example/", wantOrigin: "https://public.example"},
		{name: "request host", wantOrigin: "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkoutUC := newCheckoutHandler(t, tt.publicBaseURL)
			orderID, cartID := uuid.NewString(), uuid.NewString()

			checkoutUC.EXPECT().
				CreateSession(mock.Anything, testUserID, &usecase.CreateCheckoutSessionInput{OrderID: orderID, CartID: cartID, Origin: tt.wantOrigin}).
				Return(&usecase.CreateCheckoutSessionOutput{ClientSecret: "cs_secret", SessionID: "cs_1"}, nil)

			req := jsonRequest(http.MethodPost, "/api/payment", `{"orderId":"`+orderID+`","cartId":"`+cartID+`"}`)
			if tt.originHeader != "" {
				req.Header.Set(echo.HeaderOrigin, tt.originHeader)
			}
			c, rec := newContext(req, true)

			require.NoError(t, h.CreatePayment(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			data := decodeBody(t, rec)["data"].(map[string]any)
			assert.Equal(t, "cs_secret", data["clientSecret"])
			assert.NotContains(t, data, "SessionID")
		})
	}
}

func TestCheckoutHandler_ConfirmAlwaysRedirects(t *testing.T) {
	tests := []struct {
		name   string
		result *usecase.ConfirmResult
		err    error
	}{
		{name: "paid", result: &usecase.ConfirmResult{SessionID: "cs_1", OrderPaid: true, CartCleared: true}},
		{name: "not applied", result: &usecase.ConfirmResult{SessionID: "cs_1", Failure: "order not found"}},
		{name: "provider error", err: domainerrors.ErrProviderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkoutUC := newCheckoutHandler(t, "")
			checkoutUC.EXPECT().ConfirmSession(mock.Anything, "cs_1").Return(tt.result, tt.err)

			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/confirm?session_id=cs_1", nil), false)

			require.NoError(t, h.Confirm(c))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/orders", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func multipartProductRequest(t *testing.T, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Desk Lamp"))
	require.NoError(t, w.WriteField("company", "Acme"))
	require.NoError(t, w.WriteField("description", "a lamp for the desk"))
	require.NoError(t, w.WriteField("price", "2500"))

	if withImage {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="lamp.png"`)
		header.Set(echo.HeaderContentType, "image/png")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestAdminProductHandler_CreateProduct(t *testing.T) {
	adminUC := usecasemocks.NewMockProductAdminUsecase(t)
	h := NewAdminProductHandler(AdminProductHandlerParams{ProductAdminUC: adminUC})

	wantInput := &usecase.ProductInput{Name: "Desk Lamp", Company: "Acme", Description: "a lamp for the desk", Price: 2500}
	adminUC.EXPECT().
		CreateProduct(mock.Anything, testUserID, wantInput, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ *usecase.ProductInput, image *usecase.ImageUpload) (*entity.Product, error) {
			require.NotNil(t, image)
			assert.Equal(t, "lamp.png", image.FileName)
			assert.Equal(t, "image/png", image.ContentType)
			assert.EqualValues(t, len("png-bytes"), image.Size)
			content, err := io.ReadAll(image.Content)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(content))

			return &entity.Product{Name: "Desk Lamp"}, nil
		})

	c, rec := newContext(multipartProductRequest(t, true), true)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "product created", decodeBody(t, rec)["data"].(map[string]any)["message"])
}

func TestAdminProductHandler_CreateProductWithoutImage(t *testing.T) {
	adminUC := usecasemocks.NewMockProductAdminUsecase(t)
	h := NewAdminProductHandler(AdminProductHandlerParams{ProductAdminUC: adminUC})

	adminUC.EXPECT().
		CreateProduct(mock.Anything, testUserID, mock.Anything, (*usecase.ImageUpload)(nil)).
		Return(nil, domainerrors.NewValidationError("expected a file"))

	c, rec := newContext(multipartProductRequest(t, false), true)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "expected a file", decodeBody(t, rec)["error"].(map[string]any)["message"])
}

func TestProductHandler_GetQRCode(t *testing.T) {
	catalogUC := usecasemocks.NewMockCatalogUsecase(t)
	h := NewProductHandler(ProductHandlerParams{
		CatalogUC:  catalogUC,
		ReviewUC:   usecasemocks.NewMockReviewUsecase(t),
		FavoriteUC: usecasemocks.NewMockFavoriteUsecase(t),
	})

	catalogUC.EXPECT().ProductQR(mock.Anything, "p-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/v1/products/p-1/qr", nil), false)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.GetQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestProductHandler_GetFavorite(t *testing.T) {
	favoriteUC := usecasemocks.NewMockFavoriteUsecase(t)
	h := NewProductHandler(ProductHandlerParams{
		CatalogUC:  usecasemocks.NewMockCatalogUsecase(t),
		ReviewUC:   usecasemocks.NewMockReviewUsecase(t),
		FavoriteUC: favoriteUC,
	})

	favoriteUC.EXPECT().FindFavoriteID(mock.Anything, testUserID, "p-1").Return("", nil)

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/v1/products/p-1/favorite", nil), true)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.GetFavorite(c))
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, false, data["isFavorite"])
	assert.Equal(t, "", data["favoriteId"])
}

func TestReviewHandler_SubmitReviewDefaultsAuthor(t *testing.T) {
	reviewUC := usecasemocks.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC})

	reviewUC.EXPECT().
		SubmitReview(mock.Anything, testUserID, &usecase.ReviewInput{
			ProductID:      "p-1",
			AuthorName:     "Jane Doe",
			AuthorImageURL: "https://img.example/jane.png",
			Rating:         4,
			Comment:        "works great for reading",
		}).
		Return(&entity.Review{}, nil)

	c, rec := newContext(jsonRequest(http.MethodPost, "/api/v1/reviews", `{"productId":"p-1","rating":4,"comment":"works great for reading"}`), true)

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, "review submitted successfully", decodeBody(t, rec)["data"].(map[string]any)["message"])
}
