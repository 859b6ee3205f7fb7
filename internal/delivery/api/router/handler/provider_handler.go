// Package handler contains the HTTP handlers for the provider directory.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/delivery/api/validator"
	domainerrors "pawtrack/internal/domain/errors"
	"pawtrack/internal/errors"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler serves provider discovery and management
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// GeoLocationRequest is a WGS84 point
type GeoLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationRequest is one provider address
type LocationRequest struct {
	FullAddress string              `json:"full_address" validate:"required,max=500"`
	GeoLocation *GeoLocationRequest `json:"geo_location" validate:"omitempty"`
}

// ProviderUserRequest links a user to the provider
type ProviderUserRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,providerrole"`
}

// PhoneRequest is one provider phone number
type PhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
}

// WorkingHoursRequest is one opening interval
type WorkingHoursRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// CreateProviderRequest represents the request body for registering a provider
type CreateProviderRequest struct {
	Name         string                `json:"name" validate:"required,max=255"`
	ServiceType  string                `json:"service_type" validate:"required,max=100"`
	Email        *string               `json:"email" validate:"omitempty,email"`
	Users        []ProviderUserRequest `json:"users" validate:"required,min=1,dive"`
	Phones       []PhoneRequest        `json:"phones" validate:"required,min=1,dive"`
	WorkingHours []WorkingHoursRequest `json:"working_hours" validate:"required,min=1,max=7,dive"`
	Locations    []LocationRequest     `json:"locations" validate:"required,min=1,dive"`
}

// UpdateProviderRequest represents the request body for updating a provider
type UpdateProviderRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	ServiceType *string `json:"service_type" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// UpdateMembershipRequest represents the request body for changing a listing tier
type UpdateMembershipRequest struct {
	Membership string `json:"membership" validate:"required,membership"`
}

// SearchProviders handles GET /providers
func (h *ProviderHandler) SearchProviders(c echo.Context) error {
	input, err := parseSearchQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.providerUC.SearchProviders(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// OpenProviders handles GET /providers/open
func (h *ProviderHandler) OpenProviders(c echo.Context) error {
	input := &usecase.OpenProvidersInput{}
	err := echo.QueryParamsBinder(c).
		MustString("day_of_week", &input.DayOfWeek).
		MustString("desired_time", &input.DesiredTime).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", bindErrorMessage(err))
	}
	if input.Page, input.Size, err = queryPagination(c); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.providerUC.OpenProviders(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetProvider handles GET /providers/:id
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	provider, err := h.providerUC.GetProvider(c.Request().Context(), providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// ProviderQRCode handles GET /providers/:id/qr
func (h *ProviderHandler) ProviderQRCode(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	png, err := h.providerUC.ProviderQRCode(c.Request().Context(), providerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// CreateProvider handles POST /providers
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid provider input", validator.FieldErrors(err))
	}

	provider, err := h.providerUC.CreateProvider(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

// UpdateProvider handles PUT /providers/:id
func (h *ProviderHandler) UpdateProvider(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req UpdateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid provider input", validator.FieldErrors(err))
	}

	provider, err := h.providerUC.UpdateProvider(c.Request().Context(), userID, providerID, &usecase.UpdateProviderInput{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Email:       req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// DeleteProvider handles DELETE /providers/:id
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	if err := h.providerUC.DeleteProvider(c.Request().Context(), userID, providerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddLocation handles POST /providers/:id/locations
func (h *ProviderHandler) AddLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid location input", validator.FieldErrors(err))
	}

	input := req.toInput()
	location, err := h.providerUC.AddLocation(c.Request().Context(), userID, providerID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// RemoveLocation handles DELETE /providers/:id/locations/:locationId
func (h *ProviderHandler) RemoveLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.providerUC.RemoveLocation(c.Request().Context(), userID, providerID, locationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UpdateMembership handles PUT /admin/providers/:id/membership
func (h *ProviderHandler) UpdateMembership(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req UpdateMembershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid membership input", validator.FieldErrors(err))
	}

	provider, err := h.providerUC.UpdateMembership(c.Request().Context(), providerID, req.Membership)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

func (req *CreateProviderRequest) toInput() *usecase.CreateProviderInput {
	input := &usecase.CreateProviderInput{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Email:       req.Email,
	}
	for _, u := range req.Users {
		input.Users = append(input.Users, usecase.ProviderUserInput{UserID: u.UserID, Role: u.Role})
	}
	for _, p := range req.Phones {
		input.Phones = append(input.Phones, p.PhoneNumber)
	}
	for _, wh := range req.WorkingHours {
		input.WorkingHours = append(input.WorkingHours, wh.toInput())
	}
	for _, l := range req.Locations {
		input.Locations = append(input.Locations, l.toInput())
	}

	return input
}

func (req LocationRequest) toInput() usecase.LocationInput {
	input := usecase.LocationInput{FullAddress: req.FullAddress}
	if req.GeoLocation != nil {
		input.Latitude = req.GeoLocation.Latitude
		input.Longitude = req.GeoLocation.Longitude
	}

	return input
}

// parseSearchQuery reads the optional search filters. Absent parameters stay nil;
// malformed numbers and IDs are rejected as invalid arguments.
func parseSearchQuery(c echo.Context) (*usecase.SearchProvidersInput, error) {
	input := &usecase.SearchProvidersInput{
		ServiceType: queryString(c, "service_type"),
		Name:        queryString(c, "name"),
		PhoneNumber: queryString(c, "phone_number"),
		DayOfWeek:   queryString(c, "day_of_week"),
		DesiredTime: queryString(c, "desired_time"),
		Membership:  queryString(c, "membership"),
	}

	var err error
	if input.ProviderID, err = queryUUID(c, "provider_id"); err != nil {
		return nil, err
	}
	if input.UserID, err = queryUUID(c, "user_id"); err != nil {
		return nil, err
	}
	if input.Latitude, err = queryFloat(c, "latitude"); err != nil {
		return nil, err
	}
	if input.Longitude, err = queryFloat(c, "longitude"); err != nil {
		return nil, err
	}
	if input.RadiusKm, err = queryFloat(c, "radius_km"); err != nil {
		return nil, err
	}

	if input.Page, input.Size, err = queryPagination(c); err != nil {
		return nil, err
	}

	return input, nil
}

// queryPagination leaves an absent page or size nil so the usecase applies its
// defaults. A value that is present must be at least 1.
func queryPagination(c echo.Context) (*int, *int, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return nil, nil, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return nil, nil, err
	}
	if page != nil && *page < 1 {
		return nil, nil, domainerrors.ErrInvalidArgument.WithDetails("page must be at least 1")
	}
	if size != nil && *size < 1 {
		return nil, nil, domainerrors.ErrInvalidArgument.WithDetails("size must be at least 1")
	}

	return page, size, nil
}

func queryString(c echo.Context, name string) *string {
	if !c.QueryParams().Has(name) {
		return nil
	}
	v := c.QueryParam(name)

	return &v
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := queryString(c, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(name + " must be an integer")
	}

	return &v, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := queryString(c, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(name + " must be a number")
	}

	return &v, nil
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := queryString(c, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}

	v, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(name + " must be a UUID")
	}

	return &v, nil
}

func bindErrorMessage(err error) string {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return fmt.Sprintf("%s: %v", bindErr.Field, bindErr.Message)
	}

	return err.Error()
}
