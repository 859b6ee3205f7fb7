package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawtrack/config"
	apimiddleware "pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/router"
	"pawtrack/internal/delivery/api/router/handler"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/domain/entity"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"
	"pawtrack/internal/infra/auth"
	mockSvc "pawtrack/internal/mocks/service"
	mockUsecase "pawtrack/internal/mocks/usecase"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type serverFixture struct {
	echo   *echo.Echo
	uc     *mockUsecase.MockProviderUsecase
	health *mockSvc.MockHealthChecker
	tokens service.TokenService
}

func newServerFixture(t *testing.T, mutate ...func(*config.Config)) *serverFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey = config.SecretKeyConfig{Access: "test-access-secret", Refresh: "test-refresh-secret"}
	for _, m := range mutate {
		m(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := &serverFixture{
		uc:     mockUsecase.NewMockProviderUsecase(t),
		health: mockSvc.NewMockHealthChecker(t),
		tokens: tokens,
	}
	fx.echo = newEcho(cfg, logger, router.RouterParams{
		ProviderHandler: handler.NewProviderHandler(handler.ProviderHandlerParams{ProviderUC: fx.uc, Logger: logger}),
		HealthHandler:   handler.NewHealthHandler(fx.health, logger),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens),
	})

	return fx
}

func (fx *serverFixture) token(t *testing.T, userID uuid.UUID, roles ...entity.Role) string {
	t.Helper()

	access, _, err := fx.tokens.GenerateTokens(userID, entity.Roles(roles).ToStrings())
	require.NoError(t, err)

	return access
}

func (fx *serverFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_Health(t *testing.T) {
	fx := newServerFixture(t)

	fx.health.EXPECT().Check(mock.Anything).Return(nil).Once()
	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	fx.health.EXPECT().Check(mock.Anything).Return(errors.New("connection refused")).Once()
	rec = fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNHEALTHY", decode(t, rec).Error.Code)
}

func TestServer_SearchProviders(t *testing.T) {
	fx := newServerFixture(t)
	providerID := uuid.New()

	fx.uc.EXPECT().
		SearchProviders(mock.Anything, mock.MatchedBy(func(in *usecase.SearchProvidersInput) bool {
			return in.DayOfWeek != nil && *in.DayOfWeek == "monday" &&
				in.DesiredTime != nil && *in.DesiredTime == "10:00" &&
				in.Latitude != nil && *in.Latitude == 40.7128 &&
				in.Longitude != nil && *in.Longitude == -74.006 &&
				in.RadiusKm == nil && in.Name == nil && in.ProviderID == nil &&
				in.Page != nil && *in.Page == 2 && in.Size == nil
		})).
		Return(&usecase.Page[usecase.ProviderView]{
			Items: []usecase.ProviderView{{
				ProviderID:  providerID,
				Name:        "Happy Paws",
				ServiceType: "Veterinary",
				Membership:  entity.MembershipPremium,
				WorkingHours: []usecase.WorkingHoursView{{
					DayOfWeek: entity.Monday,
					StartTime: entity.MustTimeOfDay("09:00"),
					EndTime:   entity.MustTimeOfDay("17:00"),
				}},
			}},
			Page: 2,
			Size: 10,
		}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/providers?day_of_week=monday&desired_time=10:00&latitude=40.7128&longitude=-74.006&page=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decode(t, rec)
	assert.NotEmpty(t, env.Meta.RequestID)

	var page struct {
		Items []struct {
			ProviderID   string `json:"provider_id"`
			Name         string `json:"name"`
			Membership   string `json:"membership"`
			WorkingHours []struct {
				DayOfWeek string `json:"day_of_week"`
				StartTime string `json:"start_time"`
			} `json:"working_hours"`
		} `json:"items"`
		Page int `json:"page"`
		Size int `json:"size"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, providerID.String(), page.Items[0].ProviderID)
	assert.Equal(t, "PREMIUM", page.Items[0].Membership)
	assert.Equal(t, "MONDAY", page.Items[0].WorkingHours[0].DayOfWeek)
	assert.Equal(t, "09:00", page.Items[0].WorkingHours[0].StartTime)
	assert.Equal(t, 2, page.Page)
}

func TestServer_SearchProviders_BadQuery(t *testing.T) {
	fx := newServerFixture(t)

	for _, target := range []string{
		"/api/v1/providers?latitude=north",
		"/api/v1/providers?provider_id=42",
		"/api/v1/providers?page=first",
		"/api/v1/providers?page=0&size=5",
		"/api/v1/providers?page=1&size=0",
		"/api/v1/providers?size=-3",
	} {
		rec := fx.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec).Error.Code, target)
	}
}

func TestServer_SearchProviders_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid argument keeps details",
			err:        errors.Wrap(domainerrors.ErrInvalidArgument.WithDetails("invalid day of week: FUNDAY"), "search"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:       "pool exhausted",
			err:        domainerrors.ErrResourceExhausted,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "RESOURCE_EXHAUSTED",
		},
		{
			name:       "corrupt row",
			err:        domainerrors.ErrDataCorruption.WithDetails("bad point"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATA_CORRUPTION",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newServerFixture(t)
			fx.uc.EXPECT().SearchProviders(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := fx.do(http.MethodGet, "/api/v1/providers?day_of_week=FUNDAY", "", "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decode(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantStatus >= 500 {
				assert.Empty(t, env.Error.Details)
			}
		})
	}

	t.Run("details reach the client for 4xx", func(t *testing.T) {
		fx := newServerFixture(t)
		fx.uc.EXPECT().SearchProviders(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidArgument.WithDetails("invalid day of week: FUNDAY"))

		env := decode(t, fx.do(http.MethodGet, "/api/v1/providers?day_of_week=FUNDAY", "", ""))
		assert.JSONEq(t, `"invalid day of week: FUNDAY"`, string(env.Error.Details))
	})
}

func TestServer_OpenProviders(t *testing.T) {
	fx := newServerFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/providers/open?day_of_week=MONDAY", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/api/v1/providers/open?day_of_week=MONDAY&desired_time=09:30&page=0", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decode(t, rec).Error.Code)

	size := 5
	fx.uc.EXPECT().
		OpenProviders(mock.Anything, &usecase.OpenProvidersInput{DayOfWeek: "MONDAY", DesiredTime: "09:30", Size: &size}).
		Return(&usecase.Page[usecase.OpenProviderView]{Items: []usecase.OpenProviderView{}, Page: 1, Size: 5}, nil)

	rec = fx.do(http.MethodGet, "/api/v1/providers/open?day_of_week=MONDAY&desired_time=09:30&size=5", "", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_GetProvider(t *testing.T) {
	fx := newServerFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/providers/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)

	id := uuid.New()
	fx.uc.EXPECT().GetProvider(mock.Anything, id).Return(nil, domainerrors.ErrProviderNotFound)

	rec = fx.do(http.MethodGet, "/api/v1/providers/"+id.String(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestServer_ProviderQRCode(t *testing.T) {
	fx := newServerFixture(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}

	fx.uc.EXPECT().ProviderQRCode(mock.Anything, id).Return(png, nil)

	rec := fx.do(http.MethodGet, "/api/v1/providers/"+id.String()+"/qr", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

const createBody = `{
	"name": "Happy Paws",
	"service_type": "Veterinary",
	"email": "care@happypaws.tw",
	"users": [{"user_id": "%s", "role": "owner"}],
	"phones": [{"phone_number": "02 2345 6789"}],
	"working_hours": [{"day_of_week": "%s", "start_time": "09:00", "end_time": "17:00"}],
	"locations": [{"full_address": "No. 7, Xinyi Rd", "geo_location": {"latitude": 25.033, "longitude": 121.5654}}]
}`

func TestServer_CreateProvider(t *testing.T) {
	fx := newServerFixture(t)
	caller := uuid.New()
	body := fmt.Sprintf(createBody, caller, "monday")

	t.Run("requires a token", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/v1/providers", body, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates on behalf of the caller", func(t *testing.T) {
		fx.uc.EXPECT().
			CreateProvider(mock.Anything, caller, mock.MatchedBy(func(in *usecase.CreateProviderInput) bool {
				loc := in.Locations[0]

				return in.Name == "Happy Paws" &&
					len(in.Users) == 1 && in.Users[0].UserID == caller && in.Users[0].Role == "owner" &&
					len(in.Phones) == 1 && in.Phones[0] == "02 2345 6789" &&
					in.WorkingHours[0].DayOfWeek == "monday" &&
					loc.Latitude != nil && *loc.Latitude == 25.033
			})).
			Return(&usecase.ProviderView{ProviderID: uuid.New(), Name: "Happy Paws", Membership: entity.MembershipFree}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/providers", body, fx.token(t, caller, entity.RoleUser))
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("reports invalid fields", func(t *testing.T) {
		bad := fmt.Sprintf(createBody, caller, "FUNDAY")
		rec := fx.do(http.MethodPost, "/api/v1/providers", bad, fx.token(t, caller))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

		var details map[string]string
		require.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, "dayofweek", details["WorkingHours[0].DayOfWeek"])
	})
}

func TestServer_ProviderManagement(t *testing.T) {
	fx := newServerFixture(t)
	caller, providerID, locationID := uuid.New(), uuid.New(), uuid.New()
	token := fx.token(t, caller, entity.RoleUser)
	base := "/api/v1/providers/" + providerID.String()

	fx.uc.EXPECT().
		UpdateProvider(mock.Anything, caller, providerID, &usecase.UpdateProviderInput{Name: ptr("Clinic 24h")}).
		Return(&usecase.ProviderView{ProviderID: providerID, Name: "Clinic 24h"}, nil)
	rec := fx.do(http.MethodPut, base, `{"name": "Clinic 24h"}`, token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fx.uc.EXPECT().DeleteProvider(mock.Anything, caller, providerID).Return(domainerrors.ErrForbidden)
	rec = fx.do(http.MethodDelete, base, "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	fx.uc.EXPECT().
		AddLocation(mock.Anything, caller, providerID, &usecase.LocationInput{FullAddress: "Branch"}).
		Return(&usecase.LocationView{LocationID: locationID, FullAddress: "Branch"}, nil)
	rec = fx.do(http.MethodPost, base+"/locations", `{"full_address": "Branch"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPost, base+"/locations", `{"full_address": "Branch", "geo_location": {"latitude": 95, "longitude": 0}}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.uc.EXPECT().RemoveLocation(mock.Anything, caller, providerID, locationID).Return(domainerrors.ErrLastLocation)
	rec = fx.do(http.MethodDelete, base+"/locations/"+locationID.String(), "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LAST_LOCATION", decode(t, rec).Error.Code)
}

func TestServer_DeleteProvider(t *testing.T) {
	fx := newServerFixture(t)
	caller, providerID := uuid.New(), uuid.New()

	fx.uc.EXPECT().DeleteProvider(mock.Anything, caller, providerID).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/v1/providers/"+providerID.String(), "", fx.token(t, caller))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_UpdateMembership(t *testing.T) {
	fx := newServerFixture(t)
	providerID := uuid.New()
	target := "/api/v1/admin/providers/" + providerID.String() + "/membership"

	rec := fx.do(http.MethodPut, target, `{"membership": "PREMIUM"}`, fx.token(t, uuid.New(), entity.RoleModerator))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := fx.token(t, uuid.New(), entity.RoleAdmin)

	rec = fx.do(http.MethodPut, target, `{"membership": "GOLD"}`, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fx.uc.EXPECT().UpdateMembership(mock.Anything, providerID, "premium").
		Return(&usecase.ProviderView{ProviderID: providerID, Membership: entity.MembershipPremium}, nil)
	rec = fx.do(http.MethodPut, target, `{"membership": "premium"}`, admin)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_RateLimit(t *testing.T) {
	fx := newServerFixture(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit = 1
		cfg.HTTP.RateBurst = 2
	})
	id := uuid.New()
	target := "/api/v1/providers/" + id.String()

	fx.uc.EXPECT().GetProvider(mock.Anything, id).Return(&usecase.ProviderView{ProviderID: id}, nil).Twice()

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, target, "", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, target, "", "").Code)

	rec := fx.do(http.MethodGet, target, "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// The health check is never limited
	fx.health.EXPECT().Check(mock.Anything).Return(nil)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/health", "", "").Code)
}

func ptr[T any](v T) *T {
	return &v
}
