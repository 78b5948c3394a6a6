package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/services"
)

// EmailController serves template listing and email dispatch
type EmailController struct {
	service *services.EmailService
}

func NewEmailController(service *services.EmailService) *EmailController {
	return &EmailController{service: service}
}

// Templates handles GET /api/email/templates
func (ec *EmailController) Templates(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Templates retrieved", ec.service.Templates()))
}

// Send handles POST /api/email/send
func (ec *EmailController) Send(c echo.Context) error {
	var msg services.Message
	if err := c.Bind(&msg); err != nil {
		return badRequest(c, services.ErrIncompleteMessage.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ec.service.Send(ctx, msg); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Email sent", nil))
}

// SendTemplate handles POST /api/email/send-template
func (ec *EmailController) SendTemplate(c echo.Context) error {
	var req services.TemplateSendRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	msg, err := ec.service.SendTemplate(ctx, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Email sent", msg))
}
