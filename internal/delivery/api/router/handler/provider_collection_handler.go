package handler

import (
	"net/http"

	"pawtrack/internal/delivery/api/middleware"
	"pawtrack/internal/delivery/api/response"
	"pawtrack/internal/delivery/api/validator"
	"pawtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BulkPhonesRequest adds several phone numbers at once
type BulkPhonesRequest struct {
	Phones []PhoneRequest `json:"phones" validate:"required,min=1,dive"`
}

// BulkWorkingHoursRequest adds several opening intervals at once
type BulkWorkingHoursRequest struct {
	WorkingHours []WorkingHoursRequest `json:"working_hours" validate:"required,min=1,max=7,dive"`
}

// AddPhone handles POST /providers/:id/phones
func (h *ProviderHandler) AddPhone(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid phone input", validator.FieldErrors(err))
	}

	phones, err := h.providerUC.AddPhones(c.Request().Context(), userID, providerID, []string{req.PhoneNumber})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, phones[0])
}

// AddPhones handles POST /providers/:id/phones/bulk
func (h *ProviderHandler) AddPhones(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req BulkPhonesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phones input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid phones input", validator.FieldErrors(err))
	}

	numbers := make([]string, 0, len(req.Phones))
	for _, p := range req.Phones {
		numbers = append(numbers, p.PhoneNumber)
	}

	phones, err := h.providerUC.AddPhones(c.Request().Context(), userID, providerID, numbers)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, phones)
}

// RemovePhone handles DELETE /providers/:id/phones/:phoneId
func (h *ProviderHandler) RemovePhone(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	phoneID, err := uuid.Parse(c.Param("phoneId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid phone ID")
	}

	if err := h.providerUC.RemovePhone(c.Request().Context(), userID, providerID, phoneID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddWorkingHours handles POST /providers/:id/working-hours
func (h *ProviderHandler) AddWorkingHours(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req WorkingHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid working hours input", validator.FieldErrors(err))
	}

	hours, err := h.providerUC.AddWorkingHours(c.Request().Context(), userID, providerID, []usecase.WorkingHoursInput{req.toInput()})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, hours[0])
}

// AddWorkingHoursBulk handles POST /providers/:id/working-hours/bulk
func (h *ProviderHandler) AddWorkingHoursBulk(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req BulkWorkingHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid working hours input", validator.FieldErrors(err))
	}

	input := make([]usecase.WorkingHoursInput, 0, len(req.WorkingHours))
	for _, wh := range req.WorkingHours {
		input = append(input, wh.toInput())
	}

	hours, err := h.providerUC.AddWorkingHours(c.Request().Context(), userID, providerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, hours)
}

// UpdateWorkingHours handles PUT /providers/:id/working-hours/:workingHoursId
func (h *ProviderHandler) UpdateWorkingHours(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	workingHoursID, err := uuid.Parse(c.Param("workingHoursId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid working hours ID")
	}

	var req WorkingHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid working hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid working hours input", validator.FieldErrors(err))
	}

	input := req.toInput()
	hours, err := h.providerUC.UpdateWorkingHours(c.Request().Context(), userID, providerID, workingHoursID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hours)
}

// RemoveWorkingHours handles DELETE /providers/:id/working-hours/:workingHoursId
func (h *ProviderHandler) RemoveWorkingHours(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	workingHoursID, err := uuid.Parse(c.Param("workingHoursId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid working hours ID")
	}

	if err := h.providerUC.RemoveWorkingHours(c.Request().Context(), userID, providerID, workingHoursID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddProviderUser handles POST /providers/:id/users
func (h *ProviderHandler) AddProviderUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	var req ProviderUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid user input", validator.FieldErrors(err))
	}

	link, err := h.providerUC.AddProviderUser(c.Request().Context(), userID, providerID, &usecase.ProviderUserInput{
		UserID: req.UserID,
		Role:   req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, link)
}

// RemoveProviderUser handles DELETE /providers/:id/users/:userId
func (h *ProviderHandler) RemoveProviderUser(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.providerUC.RemoveProviderUser(c.Request().Context(), callerID, providerID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (req WorkingHoursRequest) toInput() usecase.WorkingHoursInput {
	return usecase.WorkingHoursInput{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
}
