package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/api/metrics"
	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/service"
)

// InboxHandler receives the one-shot marketing submissions.
type InboxHandler struct {
	service *service.InboxService
}

func NewInboxHandler(service *service.InboxService) *InboxHandler {
	return &InboxHandler{service: service}
}

// CreateBooking handles POST /v1/bookings.
//
// @Summary      Submit a site-visit booking
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      201   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *InboxHandler) CreateBooking(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking := domain.Booking{
		ClientName:  req.ClientName,
		Phone:       req.Phone,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Description: fmt.Sprintf("Preferred Date: %s | Time: %s\n\nMessage: %s", req.Date, req.Time, req.Message),
	}

	if err := h.service.SubmitBooking(c.Request().Context(), booking); err != nil {
		return err
	}

	metrics.LeadsTotal.WithLabelValues("booking").Inc()
	return c.JSON(http.StatusCreated, submissionResponse{Status: "received"})
}

// CreateContactMessage handles POST /v1/contact.
//
// @Summary      Submit a contact message
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message details"
// @Success      201   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *InboxHandler) CreateContactMessage(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.service.SubmitContactMessage(c.Request().Context(), msg); err != nil {
		return err
	}

	metrics.LeadsTotal.WithLabelValues("contact_message").Inc()
	return c.JSON(http.StatusCreated, submissionResponse{Status: "received"})
}
