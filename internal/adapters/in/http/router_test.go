package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/movement"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testSecret = []byte("test-secret")

type RouterTestSuite struct {
	suite.Suite

	createOperation     *MockCreateOperationHandler
	updateStatus        *MockUpdateOperationStatusHandler
	appendMovement      *MockAppendMovementHandler
	getOperation        *MockGetOperationHandler
	listOperations      *MockListOperationsHandler
	listEntityMovements *MockListEntityMovementsHandler

	router *echo.Echo
	actor  kernel.Actor
	token  string
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.createOperation = &MockCreateOperationHandler{}
	s.updateStatus = &MockUpdateOperationStatusHandler{}
	s.appendMovement = &MockAppendMovementHandler{}
	s.getOperation = &MockGetOperationHandler{}
	s.listOperations = &MockListOperationsHandler{}
	s.listEntityMovements = &MockListEntityMovementsHandler{}

	server := httpin.NewServer(s.createOperation, s.updateStatus, s.appendMovement,
		s.getOperation, s.listOperations, s.listEntityMovements)

	var err error
	s.router, err = httpin.NewRouter(httpin.RouterConfig{JWTSecret: testSecret}, server, zerolog.Nop())
	s.Require().NoError(err)

	s.actor, err = kernel.NewActor(kernel.NewUUID(), kernel.RoleManager, kernel.NewUUID())
	s.Require().NoError(err)

	s.token, err = httpin.IssueToken(testSecret, s.actor, time.Hour)
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownTest() {
	s.createOperation.AssertExpectations(s.T())
	s.updateStatus.AssertExpectations(s.T())
	s.appendMovement.AssertExpectations(s.T())
	s.getOperation.AssertExpectations(s.T())
	s.listOperations.AssertExpectations(s.T())
	s.listEntityMovements.AssertExpectations(s.T())
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if s.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) newOperation(status operation.Status) *operation.Operation {
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	op, err := operation.RestoreOperation(kernel.NewUUID(), s.actor.TenantID(), kernel.NewUUID(), status,
		"Warehouse A", "Store 12", nil, now, now, s.actor.UserID(), 2)
	s.Require().NoError(err)
	return op
}

func (s *RouterTestSuite) TestHealthIsPublic() {
	s.token = ""

	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestOpenAPIDocumentIsServed() {
	s.token = ""

	rec := s.do(http.MethodGet, "/openapi.json", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "UpdateOperationStatus")
}

func (s *RouterTestSuite) TestAPIRequiresToken() {
	tests := map[string]string{
		"missing":      "",
		"garbage":      "not-a-jwt",
		"wrong secret": mustIssue(s.T(), []byte("other-secret"), s.actor),
	}

	for name, token := range tests {
		s.Run(name, func() {
			s.token = token

			rec := s.do(http.MethodGet, "/api/v1/operations", "")

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func (s *RouterTestSuite) TestCreateOperation() {
	productID := kernel.NewUUID()
	created := s.newOperation(operation.Created)

	s.createOperation.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOperationCommand) bool {
		return cmd.ProductID() == productID &&
			cmd.Actor().TenantID() == s.actor.TenantID() &&
			cmd.Origin() == "Warehouse A" &&
			cmd.ExpectedDeliveryAt() == nil
	})).Return(created, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/operations",
		`{"productId":"`+productID.String()+`","origin":"Warehouse A","destination":"Store 12"}`)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.Operation
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(created.ID().String(), body.Id.String())
	s.Equal(servers.OperationStatus("CREATED"), body.Status)
	s.Equal(int64(2), body.Version)
}

func (s *RouterTestSuite) TestCreateOperation_RejectsBodyWithoutProduct() {
	rec := s.do(http.MethodPost, "/api/v1/operations", `{"origin":"Warehouse A"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.createOperation.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestCreateOperation_UnknownProduct() {
	s.createOperation.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("productId", kernel.NewUUID())).Once()

	rec := s.do(http.MethodPost, "/api/v1/operations", `{"productId":"`+kernel.NewUUID().String()+`"}`)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestUpdateOperationStatus() {
	op := s.newOperation(operation.AtOrigin)

	s.updateStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOperationStatusCommand) bool {
		return cmd.OperationID() == op.ID() && cmd.Status() == operation.AtOrigin
	})).Return(op, nil).Once()

	rec := s.do(http.MethodPatch, "/api/v1/operations/"+op.ID().String()+"/status", `{"status":"AT_ORIGIN"}`)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body servers.Operation
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(servers.OperationStatus("AT_ORIGIN"), body.Status)
}

func (s *RouterTestSuite) TestUpdateOperationStatus_InvalidTransition() {
	id := kernel.NewUUID()
	s.updateStatus.On("Handle", mock.Anything, mock.Anything).
		Return(nil, operation.NewInvalidTransitionError(operation.Created, operation.Completed)).Once()

	rec := s.do(http.MethodPatch, "/api/v1/operations/"+id.String()+"/status", `{"status":"COMPLETED"}`)

	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var body servers.TransitionError
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NotNil(body.From)
	s.Require().NotNil(body.To)
	s.Equal(servers.OperationStatus("CREATED"), *body.From)
	s.Equal(servers.OperationStatus("COMPLETED"), *body.To)
}

func (s *RouterTestSuite) TestUpdateOperationStatus_ErrorMapping() {
	tests := map[string]struct {
		err  error
		want int
	}{
		"not found": {errs.NewObjectNotFoundError("operationId", kernel.NewUUID()), http.StatusNotFound},
		"conflict":  {errs.NewPersistenceConflictError("operation", kernel.NewUUID()), http.StatusConflict},
		"internal":  {errors.New("connection reset"), http.StatusInternalServerError},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			s.updateStatus.On("Handle", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := s.do(http.MethodPatch, "/api/v1/operations/"+kernel.NewUUID().String()+"/status",
				`{"status":"LOADED"}`)

			s.Equal(tt.want, rec.Code)
		})
	}
}

func (s *RouterTestSuite) TestUpdateOperationStatus_RejectsUnknownStatus() {
	rec := s.do(http.MethodPatch, "/api/v1/operations/"+kernel.NewUUID().String()+"/status", `{"status":"LOST"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.updateStatus.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestGetOperation() {
	id := kernel.NewUUID()
	response := queries.OperationResponse{
		ID:        id,
		CompanyID: s.actor.TenantID(),
		ProductID: kernel.NewUUID(),
		Status:    operation.InTransit,
		CreatedAt: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC),
		Version:   4,
	}

	s.getOperation.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOperationQuery) bool {
		return q.OperationID() == id && q.TenantID() == s.actor.TenantID()
	})).Return(response, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/operations/"+id.String(), "")

	s.Require().Equal(http.StatusOK, rec.Code)

	var body servers.Operation
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(servers.OperationStatus("IN_TRANSIT"), body.Status)
	s.Nil(body.UpdatedBy)
	s.Equal(int64(4), body.Version)
}

func (s *RouterTestSuite) TestGetOperation_MalformedID() {
	rec := s.do(http.MethodGet, "/api/v1/operations/not-a-uuid", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestListOperations_PassesFilterAndPaging() {
	s.listOperations.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOperationsQuery) bool {
		return q.Status() != nil && *q.Status() == operation.Loaded && q.Limit() == 10 && q.Offset() == 20
	})).Return([]queries.OperationResponse{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/operations?status=LOADED&limit=10&offset=20", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *RouterTestSuite) TestFractionalRateLimitAdmitsOneRequest() {
	server := httpin.NewServer(s.createOperation, s.updateStatus, s.appendMovement,
		s.getOperation, s.listOperations, s.listEntityMovements)
	var err error
	s.router, err = httpin.NewRouter(httpin.RouterConfig{JWTSecret: testSecret, RateLimitRPS: 0.5}, server, zerolog.Nop())
	s.Require().NoError(err)

	s.listOperations.On("Handle", mock.Anything, mock.Anything).Return([]queries.OperationResponse{}, nil).Once()

	first := s.do(http.MethodGet, "/api/v1/operations", "")
	second := s.do(http.MethodGet, "/api/v1/operations", "")

	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusTooManyRequests, second.Code)
}

func (s *RouterTestSuite) TestListOperations_RejectsOversizedPage() {
	rec := s.do(http.MethodGet, "/api/v1/operations?limit=1000", "")

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestListOperationMovements() {
	id := kernel.NewUUID()
	previous, next := operation.Created, operation.AtOrigin
	history := []queries.MovementResponse{{
		ID:             kernel.NewUUID(),
		EntityType:     movement.EntityOperation,
		EntityID:       id,
		Type:           movement.StatusChanged,
		PreviousStatus: &previous,
		NewStatus:      &next,
		Description:    "Status changed from CREATED to AT_ORIGIN",
		CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}}

	s.listEntityMovements.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListEntityMovementsQuery) bool {
		return q.EntityType() == movement.EntityOperation && q.EntityID() == id
	})).Return(history, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/operations/"+id.String()+"/movements", "")

	s.Require().Equal(http.StatusOK, rec.Code)

	var body []servers.Movement
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body, 1)
	s.Equal("lifecycle", body[0].Category)
	s.Require().NotNil(body[0].PreviousStatus)
	s.Equal(servers.OperationStatus("CREATED"), *body[0].PreviousStatus)
	s.Nil(body[0].CreatedBy)
}

func (s *RouterTestSuite) TestListEntityMovements_Product() {
	id := kernel.NewUUID()
	s.listEntityMovements.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListEntityMovementsQuery) bool {
		return q.EntityType() == movement.EntityProduct && q.EntityID() == id
	})).Return([]queries.MovementResponse{}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/movements/PRODUCT/"+id.String(), "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestAppendOperationMovement() {
	id := kernel.NewUUID()
	stored, err := movement.NewMovement(s.actor.TenantID(), movement.EntityOperation, id,
		movement.IncidentReported, "pallet damaged", s.actor.UserID())
	s.Require().NoError(err)

	s.appendMovement.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AppendMovementCommand) bool {
		return cmd.EntityType() == movement.EntityOperation &&
			cmd.EntityID() == id &&
			cmd.MovementType() == movement.IncidentReported &&
			cmd.Description() == "pallet damaged"
	})).Return(stored, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/operations/"+id.String()+"/movements",
		`{"type":"INCIDENT_REPORTED","description":"pallet damaged"}`)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body servers.Movement
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(servers.MovementType("INCIDENT_REPORTED"), body.Type)
	s.Require().NotNil(body.CreatedBy)
	s.Equal(s.actor.UserID().String(), body.CreatedBy.String())
}

func (s *RouterTestSuite) TestAppendMovement_RejectsSystemOnlyType() {
	rec := s.do(http.MethodPost, "/api/v1/movements",
		`{"entityType":"OPERATION","entityId":"`+kernel.NewUUID().String()+`","type":"STATUS_CHANGED"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.appendMovement.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func mustIssue(t *testing.T, secret []byte, actor kernel.Actor) string {
	t.Helper()
	token, err := httpin.IssueToken(secret, actor, time.Hour)
	require.NoError(t, err)
	return token
}
