package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/middleware"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/services"
	"github.com/HSouheill/client_desk/validation"
)

// AuthController handles sign-in, sign-out and account creation
type AuthController struct {
	service      *services.AuthService
	validator    *validation.Validator
	cookieSecure bool
}

func NewAuthController(service *services.AuthService, v *validation.Validator, cookieSecure bool) *AuthController {
	return &AuthController{service: service, validator: v, cookieSecure: cookieSecure}
}

// setTokenCookie stores the session token; an empty token clears the cookie.
func (ac *AuthController) setTokenCookie(c echo.Context, token string, expires time.Time) {
	maxAge := 0
	if token == "" {
		maxAge = -1
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ac.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := ac.validator.Validate(req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	session, err := ac.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	ac.setTokenCookie(c, session.Token, session.ExpiresAt)
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Login successful", session))
}

// Logout handles POST /api/auth/logout
func (ac *AuthController) Logout(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims != nil {
		ctx, cancel := requestContext(c)
		defer cancel()

		if err := ac.service.Logout(ctx, claims.Id, time.Unix(claims.ExpiresAt, 0)); err != nil {
			return respondError(c, err)
		}
	}

	ac.setTokenCookie(c, "", time.Unix(0, 0))
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Logged out", nil))
}

// Me handles GET /api/auth/me
func (ac *AuthController) Me(c echo.Context) error {
	current, err := middleware.CurrentUser(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, "Please provide valid credentials"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.service.Me(ctx, current.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(http.StatusOK, "Account retrieved", user))
}

// Register handles POST /api/auth/register (admin only)
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := ac.validator.Validate(req); err != nil {
		return respondError(c, &services.ValidationError{Fields: fieldErrors(err)})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.service.Register(ctx, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OK(http.StatusCreated, "Account created", user))
}

func fieldErrors(err error) map[string]string {
	if fe, ok := err.(validation.FieldErrors); ok {
		return fe
	}
	return map[string]string{"body": err.Error()}
}
