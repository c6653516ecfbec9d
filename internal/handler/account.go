package handler

import (
	"net/http"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler/dto"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body  dto.RegisterRequest  true  "account"
// @Success  201  {object}  dto.UserResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /auth/register/ [post]
func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary  Exchange credentials for a bearer token and a session cookie
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body  dto.LoginRequest  true  "credentials"
// @Success  200  {object}  dto.LoginResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  401  {object}  dto.ErrorResponse
// @Router   /auth/login/ [post]
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	sess, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if sess.SessionID != "" {
		h.setSessionCookie(c, sess.SessionID, int(h.opts.CookieTTL.Seconds()))
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: sess.Token,
		User:  dto.ToUserResponse(sess.User),
	})
}

// Logout godoc
// @Summary   End the cookie session
// @Tags      auth
// @Success   204
// @Failure   401  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /auth/logout/ [post]
func (h *Handler) Logout(c *ginext.Context) {
	if err := h.userService.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary   The authenticated user
// @Tags      auth
// @Produce   json
// @Success   200  {object}  dto.UserResponse
// @Failure   401  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /auth/me/ [get]
func (h *Handler) Me(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) setSessionCookie(c *ginext.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, value, maxAge, "/", "", h.opts.CookieSecure, true)
}
