package handler

import (
	"errors"
	"net/http"
	"strings"

	"remindtrack/internal/application/dto"
	"remindtrack/internal/application/service"
	appErrors "remindtrack/internal/pkg/errors"
	"remindtrack/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the caller's owner identity.
const HeaderUserID = "X-User-ID"

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReminderHandler serves the reminder REST API.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, log: log}
}

func ownerID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
}

// ListReminders handles GET /api/reminders?search=&startDate=&endDate=.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	var req dto.ListRemindersRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return h.respondError(c, appErrors.ErrInvalidDate)
	}
	reminders, err := h.reminderService.ListReminders(c.Request().Context(), ownerID(c), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminders)
}

// CreateReminder handles POST /api/reminders.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req dto.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return h.respondError(c, appErrors.ErrInvalidReminder)
	}
	reminder, err := h.reminderService.CreateReminder(c.Request().Context(), ownerID(c), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

// GetReminder handles GET /api/reminders/:reminderId.
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	reminder, err := h.reminderService.GetReminder(c.Request().Context(), ownerID(c), c.Param("reminderId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// UpdateReminder handles PUT /api/reminders/:reminderId.
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	var req dto.ReminderRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return h.respondError(c, appErrors.ErrInvalidReminder)
	}
	reminder, err := h.reminderService.UpdateReminder(c.Request().Context(), ownerID(c), c.Param("reminderId"), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// DeleteReminder handles DELETE /api/reminders/:reminderId.
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	if err := h.reminderService.DeleteReminder(c.Request().Context(), ownerID(c), c.Param("reminderId")); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// StatusCode maps an application error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrInvalidRange),
		errors.Is(err, appErrors.ErrInvalidReminder),
		errors.Is(err, appErrors.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrMissingOwnerScope):
		return http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrReminderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *ReminderHandler) respondError(c echo.Context, err error) error {
	code := StatusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.log.Error("Request failed", err)
		msg = appErrors.ErrInternalServer.Error()
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
