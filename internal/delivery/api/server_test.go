package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shop/config"
	"shop/internal/delivery/api/router"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockUC "shop/internal/mocks/usecase"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	productUC *mockUC.MockProductUsecase
	userUC    *mockUC.MockUserUsecase
	authUC    *mockUC.MockAuthUsecase
	echo      *echo.Echo
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	productUC := mockUC.NewMockProductUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)
	authUC := mockUC.NewMockAuthUsecase(t)

	e := newEcho(cfg, logger, router.RouterParams{
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
	})

	return &apiFixture{productUC: productUC, userUC: userUC, authUC: authUC, echo: e}
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))

	return env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestCreateProduct_ReturnsCreatedProduct(t *testing.T) {
	f := newAPIFixture(t)

	f.productUC.EXPECT().
		CreateProduct(mock.Anything, &usecase.CreateProductInput{
			Name:     "Ball",
			Price:    decimal.RequireFromString("9.99"),
			Category: "Soccer",
			Quantity: 10,
		}).
		Return(&entity.Product{
			ID:       "64b7f0c2a1b2c3d4e5f60718",
			Name:     "Ball",
			Price:    decimal.RequireFromString("9.99"),
			Category: "Soccer",
			Quantity: 10,
		}, nil)

	rec := f.do(http.MethodPost, "/api/produits", `{"name":"Ball","price":9.99,"category":"Soccer","quantity":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.JSONEq(t, `{
		"message": "Product created successfully",
		"product": {"_id":"64b7f0c2a1b2c3d4e5f60718","name":"Ball","price":9.99,"category":"Soccer","quantity":10}
	}`, string(decode(t, rec).Data))
}

func TestCreateProduct_MissingQuantity(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/produits", `{"name":"Ball","price":9.99,"category":"Soccer"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "missing required fields: quantity", env.Error.Details)
}

func TestGetProduct_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errors.Wrap(domainerrors.ErrProductNotFound, "get"), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"malformed id", errors.Wrap(domainerrors.ErrInvalidID, "get"), http.StatusBadRequest, "INVALID_ID"},
		{"store down", domainerrors.NewDatabaseExecuteError(errors.New("no reachable servers"), "find"), http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.productUC.EXPECT().GetProduct(mock.Anything, "abc").Return(nil, tt.err)

			rec := f.do(http.MethodGet, "/api/produits/abc", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestUpdateProduct_PriceOnly(t *testing.T) {
	f := newAPIFixture(t)
	price := decimal.RequireFromString("24.5")

	f.productUC.EXPECT().
		UpdateProduct(mock.Anything, "p1", &usecase.UpdateProductInput{Price: &price}).
		Return(&entity.Product{ID: "p1", Name: "Ball", Price: price, Category: "Soccer", Quantity: 10}, nil)

	rec := f.do(http.MethodPut, "/api/produits/p1", `{"price":24.5,"quantity":99}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"_id":"p1","name":"Ball","price":24.5,"category":"Soccer","quantity":10}`, string(decode(t, rec).Data))
}

func TestDeleteProduct(t *testing.T) {
	f := newAPIFixture(t)
	f.productUC.EXPECT().DeleteProduct(mock.Anything, "p1").Return(nil)

	rec := f.do(http.MethodDelete, "/api/produits/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, string(decode(t, rec).Data))
}

func TestExportProducts(t *testing.T) {
	f := newAPIFixture(t)
	f.productUC.EXPECT().
		ExportProducts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) (*usecase.ExportedFile, error) {
			_, err := w.Write([]byte("PK"))
			return &usecase.ExportedFile{FileName: "produits.xlsx", ContentType: "application/vnd.ms-excel"}, err
		})

	rec := f.do(http.MethodGet, "/api/produits/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.ms-excel", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="produits.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestRegisterUser_MissingPhone(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/users",
		`{"lastName":"Martin","firstName":"Alex","email":"alex@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "phone")
}

func TestRegisterUser_HidesPasswordHash(t *testing.T) {
	f := newAPIFixture(t)

	f.userUC.EXPECT().
		RegisterUser(mock.Anything, mock.AnythingOfType("*usecase.RegisterUserInput")).
		Return(&entity.User{ID: "u1", Email: "alex@example.com", PasswordHash: "$2a$10$digest", Cart: []string{}}, nil)

	rec := f.do(http.MethodPost, "/api/users",
		`{"lastName":"Martin","firstName":"Alex","phone":"0600000000","email":"alex@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")

	var data handler.UserMessageResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "User created successfully", data.Message)
	assert.Equal(t, "u1", data.User.ID)
}

func TestRegisterUser_Conflict(t *testing.T) {
	f := newAPIFixture(t)

	f.userUC.EXPECT().
		RegisterUser(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "create"))

	rec := f.do(http.MethodPost, "/api/users",
		`{"lastName":"Martin","firstName":"Alex","phone":"06","email":"alex@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestListUsers_HidesPasswordHash(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().ListUsers(mock.Anything).
		Return([]*entity.User{{ID: "u1", PasswordHash: "secret-digest"}}, nil)

	rec := f.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-digest")
}

func TestCartRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().AddToCart(mock.Anything, "u1", "p1").Return([]string{"p1"}, nil)
	f.userUC.EXPECT().GetCart(mock.Anything, "u1").Return([]string{"p1"}, nil)
	f.userUC.EXPECT().RemoveFromCart(mock.Anything, "u1", "p1").Return([]string{}, nil)

	rec := f.do(http.MethodPost, "/api/users/u1/cart", `{"productId":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cart":["p1"]}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodGet, "/api/users/u1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cart":["p1"]}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodDelete, "/api/users/u1/cart/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cart":[]}`, string(decode(t, rec).Data))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "wrong password", err: errors.Wrap(domainerrors.ErrInvalidCredentials, "login"), wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS"},
		{name: "unknown email", err: errors.Wrap(domainerrors.ErrUserNotFound, "login"), wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			call := f.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alex@example.com", Password: "s3cret"})
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&entity.User{ID: "u1", Email: "alex@example.com", PasswordHash: "digest"}, nil)
			}

			rec := f.do(http.MethodPost, "/api/login", `{"email":"alex@example.com","password":"s3cret"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decode(t, rec)
			if tt.err != nil {
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}

			var data handler.UserMessageResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, "Login successful", data.Message)
			assert.Equal(t, "alex@example.com", data.User.Email)
			assert.NotContains(t, rec.Body.String(), "digest")
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}
