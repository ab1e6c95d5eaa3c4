package handlers_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/schergr/interiordesign/internal/handlers"
	"github.com/schergr/interiordesign/internal/metrics"
	"github.com/schergr/interiordesign/internal/platform/config"
	"github.com/schergr/interiordesign/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	cfg       *config.Config
	vendors   *mockEntitySvc[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest]
	products  *mockEntitySvc[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	clients   *mockEntitySvc[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	contracts *mockEntitySvc[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest]
	tasks     *mockEntitySvc[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]
	notes     *mockEntitySvc[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest]
	users     *mockUserSvc
	tokens    *mockTokenSvc
	lookups   *mockLookupSvc
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		IsProduction:       true,
		RequireAuth:        false,
		RequestTimeout:     5 * time.Second,
		AuthRateLimit:      "1000-M",
		CORSAllowedOrigins: []string{"*"},
	}
	suite.vendors = new(mockEntitySvc[domain.Vendor, dto.CreateVendorRequest, dto.UpdateVendorRequest])
	suite.products = new(mockEntitySvc[domain.Product, dto.CreateProductRequest, dto.UpdateProductRequest])
	suite.clients = new(mockEntitySvc[domain.Client, dto.CreateClientRequest, dto.UpdateClientRequest])
	suite.contracts = new(mockEntitySvc[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest])
	suite.tasks = new(mockEntitySvc[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest])
	suite.notes = new(mockEntitySvc[domain.Note, dto.CreateNoteRequest, dto.UpdateNoteRequest])
	suite.users = new(mockUserSvc)
	suite.tokens = new(mockTokenSvc)
	suite.lookups = new(mockLookupSvc)
}

func (suite *HandlersTestSuite) router() *gin.Engine {
	services := &portssvc.ServiceContainer{
		Vendor:   suite.vendors,
		Product:  suite.products,
		Client:   suite.clients,
		Contract: suite.contracts,
		Task:     suite.tasks,
		Note:     suite.notes,
		User:     suite.users,
		Token:    suite.tokens,
		Lookup:   suite.lookups,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	err := handlers.RegisterRoutes(r, suite.cfg, services, metrics.New("handlers_test"),
		utils.InitializePosthogClient("", "", logger), logger)
	suite.Require().NoError(err)
	return r
}

func (suite *HandlersTestSuite) do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlersTestSuite) TestHealth() {
	rec := suite.do(suite.router(), http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("OK", rec.Body.String())
}

func (suite *HandlersTestSuite) TestSwaggerDocListsEveryResource() {
	suite.cfg.IsProduction = false
	rec := suite.do(suite.router(), http.MethodGet, "/swagger/doc.json", "")

	suite.Equal(http.StatusOK, rec.Code)
	for _, resource := range []string{
		"vendors", "products", "clients", "projects", "contracts", "tasks",
		"documents", "inventory", "employees", "leads", "rooms", "items",
		"proposals", "invoices", "notes",
	} {
		suite.Contains(rec.Body.String(), `"/`+resource+`"`)
		suite.Contains(rec.Body.String(), `"/`+resource+`/{id}"`)
	}
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	rec := suite.do(suite.router(), http.MethodGet, "/swagger/doc.json", "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *HandlersTestSuite) TestVendorCreateThenList() {
	suite.vendors.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateVendorRequest) bool {
		return req.Name == "Acme Fabrics" && req.Email != nil && *req.Email == "sales@acme.test"
	})).Return(int64(1), nil).Once()
	suite.vendors.On("List", mock.Anything).Return([]domain.Vendor{{ID: 1, Name: "Acme Fabrics"}}, nil).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodPost, "/vendors", `{"name":"Acme Fabrics","email":"sales@acme.test"}`)
	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{"id":1}`, rec.Body.String())

	rec = suite.do(r, http.MethodGet, "/vendors", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"name":"Acme Fabrics"`)
	suite.vendors.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestVendorCreate_MissingName() {
	rec := suite.do(suite.router(), http.MethodPost, "/vendors", `{"phone":"555-0100"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"Invalid input: name is required"}`, rec.Body.String())
	suite.vendors.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestVendorUpdate_BlankNameRejected() {
	rec := suite.do(suite.router(), http.MethodPut, "/vendors/1", `{"name":"  "}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.vendors.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestDeleteTwice() {
	suite.notes.On("Delete", mock.Anything, int64(3)).Return(nil).Once()
	suite.notes.On("Delete", mock.Anything, int64(3)).Return(apperrors.ErrNotFound).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodDelete, "/notes/3", "")
	suite.Equal(http.StatusNoContent, rec.Code)
	suite.Empty(rec.Body.String())

	rec = suite.do(r, http.MethodDelete, "/notes/3", "")
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.JSONEq(`{"error":"Note not found"}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestInvalidID() {
	r := suite.router()
	for _, path := range []string{"/vendors/abc", "/vendors/0", "/vendors/-4"} {
		rec := suite.do(r, http.MethodGet, path, "")
		suite.Equal(http.StatusBadRequest, rec.Code, path)
	}
	suite.vendors.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestProductUnknownVendor() {
	suite.products.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest")).
		Return(int64(0), apperrors.Validationf("Invalid vendor_id: referenced row does not exist")).Once()

	rec := suite.do(suite.router(), http.MethodPost, "/products", `{"sku":"LMP-1","name":"Lamp","price":"19.5","vendor_id":999}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"Invalid vendor_id: referenced row does not exist"}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestProductPriceAcceptsNumber() {
	suite.products.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateProductRequest) bool {
		return req.Price != nil && req.Price.Equal(decimal.RequireFromString("19.5"))
	})).Return(int64(7), nil).Once()

	rec := suite.do(suite.router(), http.MethodPost, "/products", `{"sku":"LMP-1","name":"Lamp","price":19.5}`)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.products.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestClientWithoutName() {
	suite.clients.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateClientRequest")).
		Return(int64(0), apperrors.Validationf("Invalid input: name or first_name/last_name is required")).Once()

	rec := suite.do(suite.router(), http.MethodPost, "/clients", `{"primary_phone":"555"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "first_name/last_name")
}

func (suite *HandlersTestSuite) TestContractDetailShowsIDsAndNames() {
	contract := &domain.Contract{
		ID:         2,
		ClientID:   ptr(int64(4)),
		ClientName: ptr("John Doe"),
		StatusID:   ptr(int64(2)),
		StatusName: ptr("Active"),
		StartDate:  ptr(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
		Amount:     decimal.NullDecimal{Decimal: decimal.RequireFromString("100"), Valid: true},
	}
	suite.contracts.On("Get", mock.Anything, int64(2)).Return(contract, nil).Once()

	rec := suite.do(suite.router(), http.MethodGet, "/contracts/2", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{
		"id": 2,
		"client_id": 4, "client": "John Doe",
		"employee_id": null, "employee": null,
		"project_id": null, "project": null,
		"lead_id": null, "lead": null,
		"status_id": 2, "status": "Active",
		"start_date": "2026-01-15", "end_date": null,
		"amount": "100.00"
	}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestContractUpdate() {
	suite.contracts.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(req dto.UpdateContractRequest) bool {
		return req.StatusID.Valid && req.StatusID.Value == 2 && !req.Amount.Set && !req.ClientID.Set
	})).Return(&domain.Contract{ID: 2}, nil).Once()
	suite.contracts.On("Update", mock.Anything, int64(8), mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodPut, "/contracts/2", `{"status_id":2}`)
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"id":2}`, rec.Body.String())

	rec = suite.do(r, http.MethodPut, "/contracts/8", `{"status_id":2}`)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.JSONEq(`{"error":"Contract not found"}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestContractUpdate_NullClearsReference() {
	suite.contracts.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(req dto.UpdateContractRequest) bool {
		return req.ClientID.Set && !req.ClientID.Valid && !req.StatusID.Set
	})).Return(&domain.Contract{ID: 1}, nil).Once()

	rec := suite.do(suite.router(), http.MethodPut, "/contracts/1", `{"client_id":null}`)

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"id":1}`, rec.Body.String())
	suite.contracts.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestVendorUpdate_ValidatesNullableEmail() {
	suite.vendors.On("Update", mock.Anything, int64(4), mock.MatchedBy(func(req dto.UpdateVendorRequest) bool {
		return req.Email.Set && !req.Email.Valid
	})).Return(&domain.Vendor{ID: 4}, nil).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodPut, "/vendors/4", `{"email":"not-an-email"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"Invalid input: email is invalid"}`, rec.Body.String())

	rec = suite.do(r, http.MethodPut, "/vendors/4", `{"email":null}`)
	suite.Equal(http.StatusOK, rec.Code)
	suite.vendors.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestTaskCreate() {
	suite.tasks.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateTaskRequest")).Return(int64(11), nil).Once()

	rec := suite.do(suite.router(), http.MethodPost, "/tasks", `{"name":"Order fabric","due_date":"2026-03-01"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{"id":11}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestServiceFailureIs500() {
	suite.vendors.On("List", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	rec := suite.do(suite.router(), http.MethodGet, "/vendors", "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.JSONEq(`{"error":"Failed to list vendor"}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestLeadStages() {
	suite.lookups.On("ListLeadStages", mock.Anything).Return([]domain.LeadStage{{ID: 1, Name: "New"}, {ID: 2, Name: "Follow-Up"}}, nil).Once()

	rec := suite.do(suite.router(), http.MethodGet, "/leadstages", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[{"id":1,"name":"New"},{"id":2,"name":"Follow-Up"}]`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestRegisterTwice() {
	suite.users.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(&domain.User{ID: 1, Username: "steph"}, nil).Once()
	suite.users.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.Duplicatef("User already exists")).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodPost, "/register", `{"username":"steph","password":"s3cret"}`)
	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{"message":"User steph created"}`, rec.Body.String())

	rec = suite.do(r, http.MethodPost, "/register", `{"username":"steph","password":"s3cret"}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"User already exists"}`, rec.Body.String())
}

func (suite *HandlersTestSuite) TestRegisterMissingPassword() {
	rec := suite.do(suite.router(), http.MethodPost, "/register", `{"username":"steph"}`)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONEq(`{"error":"Invalid input"}`, rec.Body.String())
	suite.users.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestLogin() {
	user := &domain.User{ID: 5, Username: "steph"}
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	suite.users.On("AuthenticateUser", mock.Anything, "steph", "s3cret").Return(user, nil).Once()
	suite.users.On("AuthenticateUser", mock.Anything, "steph", "nope").Return(nil, apperrors.ErrUnauthorized).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed", expires, nil).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodPost, "/login", `{"username":"steph","password":"s3cret"}`)
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"token":"signed","expires_at":"2026-01-01T12:00:00Z"}`, rec.Body.String())

	rec = suite.do(r, http.MethodPost, "/login", `{"username":"steph","password":"nope"}`)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *HandlersTestSuite) TestAuthRequired() {
	suite.cfg.RequireAuth = true
	suite.tokens.On("ParseAccessToken", mock.Anything, "good").Return(int64(5), nil).Once()
	suite.users.On("GetUserByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Username: "steph"}, nil).Once()
	suite.vendors.On("List", mock.Anything).Return([]domain.Vendor{}, nil).Once()
	r := suite.router()

	rec := suite.do(r, http.MethodGet, "/vendors", "")
	suite.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/vendors", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())

	// public routes stay open
	rec = suite.do(r, http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)
}

func ptr[V any](v V) *V {
	return &v
}
