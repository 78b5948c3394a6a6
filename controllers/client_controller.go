package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/dashboard"
	"github.com/HSouheill/client_desk/middleware"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/services"
)

// ClientController serves the client-record API
type ClientController struct {
	service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{service: service}
}

// Create handles POST /api/clients
func (cc *ClientController) Create(c echo.Context) error {
	var req models.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, "Please provide valid credentials"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	record, err := cc.service.Create(ctx, req, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OK(http.StatusCreated, "Client record submitted", record))
}

// List handles GET /api/clients
func (cc *ClientController) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := cc.service.List(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Client records retrieved", records))
}

// Dashboard handles GET /api/clients/dashboard
func (cc *ClientController) Dashboard(c echo.Context) error {
	fc, err := dashboard.ParseCriteria(
		c.QueryParam("status"),
		c.QueryParam("serviceType"),
		c.QueryParam("search"),
		c.QueryParam("startDate"),
		c.QueryParam("endDate"),
		cc.service.Location(),
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	view, err := cc.service.Dashboard(ctx, fc)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Dashboard retrieved", view))
}

// Get handles GET /api/clients/:id
func (cc *ClientController) Get(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	record, err := cc.service.Get(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Client record retrieved", record))
}

// UpdateStatus handles PATCH /api/clients/:id/status
func (cc *ClientController) UpdateStatus(c echo.Context) error {
	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	record, err := cc.service.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Status updated to "+string(record.Status), record))
}
