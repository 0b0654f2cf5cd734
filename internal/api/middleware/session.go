package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffles-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/session"
)

const (
	csrfHeader    = "X-XSRF-TOKEN"
	csrfHeaderAlt = "X-CSRF-TOKEN"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// StartSession resumes or begins the request's session and stores it on the context.
func StartSession(manager *session.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, err := manager.Start(ctx.Request.Context(), ctx.Writer, ctx.Request)
		if err != nil {
			response.RenderError(ctx, fmt.Errorf("middleware.StartSession -> manager.Start -> %w", err))
			return
		}

		ctx.Set(session.ContextKey, sess)
		ctx.Next()
	}
}

// Authenticate rejects requests whose session has no logged in user. The user is loaded
// once and kept on the session for the handlers.
func Authenticate(users UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sess, ok := session.FromContext(ctx)
		if !ok || !sess.Check() {
			response.RenderError(ctx, domain.ErrUnauthenticated)
			return
		}

		user, err := users.GetUser(ctx.Request.Context(), sess.UserID())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				err = domain.ErrUnauthenticated
			}
			response.RenderError(ctx, fmt.Errorf("middleware.Authenticate -> users.GetUser -> %w", err))
			return
		}

		sess.SetUser(user)
		ctx.Next()
	}
}

// VerifyCSRF requires writes to echo the session's CSRF token in a header. It is mounted
// ahead of Authenticate, so a write with a bad token is a 419 whether or not a user is
// logged in.
func VerifyCSRF() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			ctx.Next()
			return
		}

		token := ctx.GetHeader(csrfHeader)
		if token == "" {
			token = ctx.GetHeader(csrfHeaderAlt)
		}

		sess, ok := session.FromContext(ctx)
		if !ok || !sess.VerifyCSRF(token) {
			response.RenderError(ctx, fmt.Errorf("middleware.VerifyCSRF -> %w", domain.ErrTokenMismatch))
			return
		}

		ctx.Next()
	}
}
