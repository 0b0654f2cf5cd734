package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/session"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Verify(ctx context.Context, name, password string) (domain.User, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      201      {object}  response.Registered
// @Failure      422      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := request.Bind(ctx, &req); err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderError(ctx, err)
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Registered{
		Message: "user registered",
		Data:    response.NewUser(user),
	})
}

// HandleCSRFCookie godoc
// @Summary      Issue the CSRF cookie
// @Description  Stores the guest session and sets the session and XSRF-TOKEN cookies.
// @Tags         auth
// @Success      204
// @Failure      503  {object}  response.Err
// @Router       /csrf-cookie [get]
func (h *AuthHandler) HandleCSRFCookie(ctx *gin.Context) {
	sess, err := currentSession(ctx)
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = sess.Persist(ctx.Request.Context()); err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleCSRFCookie -> sess.Persist -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleLogin godoc
// @Summary      Log in with name and password
// @Description  Starts an authenticated session. The session id and CSRF token are rotated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.UserEnvelope
// @Failure      401      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	sess, err := currentSession(ctx)
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	var req request.LoginRequest
	if err = request.Bind(ctx, &req); err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderError(ctx, err)
		return
	}

	user, err := sess.Attempt(ctx.Request.Context(), h.svc, req.Name, req.Password)
	if err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleLogin -> sess.Attempt -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.UserEnvelope{
		User: response.NewUser(user),
	})
}

// HandleLogout godoc
// @Summary      End the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Message
// @Failure      401  {object}  response.Err
// @Failure      419  {object}  response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	sess, err := currentSession(ctx)
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	if err = sess.Invalidate(ctx.Request.Context()); err != nil {
		response.RenderError(ctx, fmt.Errorf("v1.HandleLogout -> sess.Invalidate -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Message: "session ended",
	})
}

// HandleMe godoc
// @Summary      Get the logged in user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.UserEnvelope
// @Failure      401  {object}  response.Err
// @Router       /auth/me [get]
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	sess, err := currentSession(ctx)
	if err != nil {
		response.RenderError(ctx, err)
		return
	}

	user, ok := sess.User()
	if !ok {
		response.RenderError(ctx, domain.ErrUnauthenticated)
		return
	}

	ctx.JSON(http.StatusOK, response.UserEnvelope{
		User: response.NewUser(user),
	})
}

func currentSession(ctx *gin.Context) (*session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("v1.currentSession -> %w", domain.ErrUnauthenticated)
	}

	return sess, nil
}
