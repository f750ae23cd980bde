package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadehouse/fadehouse-api/internal/httperr"
	"github.com/fadehouse/fadehouse-api/internal/mail"
	"github.com/fadehouse/fadehouse-api/internal/validators"
)

type EmailHandler struct {
	mailer *mail.Client
}

func NewEmailHandler(mailer *mail.Client) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

type ConfirmationEmailRequest struct {
	To              string `json:"to" binding:"required,email"`
	CustomerName    string `json:"customer_name" binding:"required"`
	ServiceName     string `json:"service_name" binding:"required"`
	BarberName      string `json:"barber_name" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Price           string `json:"price"`
}

// SendConfirmation relays one booking-confirmation mail. One call, one
// message; failures surface to the caller, nothing is retried here.
func (h *EmailHandler) SendConfirmation(c *gin.Context) {
	var req ConfirmationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	to := validators.NormalizeEmail(req.To)
	if !validators.IsEmailDomainValid(to) {
		httperr.BadRequest(c, "invalid_email_domain", "The recipient's email domain does not look valid.")
		return
	}

	err := h.mailer.SendConfirmation(c.Request.Context(), mail.Confirmation{
		To:              to,
		CustomerName:    req.CustomerName,
		ServiceName:     req.ServiceName,
		BarberName:      req.BarberName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Price:           req.Price,
	})
	if err != nil {
		if httperr.IsBusiness(err, "mail_disabled") {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mail_disabled"})
			return
		}
		httperr.Internal(c, "failed_to_send_email", "Could not send the confirmation email.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
