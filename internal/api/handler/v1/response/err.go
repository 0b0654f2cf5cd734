package response

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

// StatusSessionExpired is the non standard status for a stale session or CSRF token.
const StatusSessionExpired = 419

// Err is the JSON body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Title    string              `json:"error"`
	Message  string              `json:"message,omitempty"`
	Messages map[string][]string `json:"messages,omitempty"`
	File     string              `json:"file,omitempty"`
	Line     int                 `json:"line,omitempty"`
}

var hideDetails atomic.Bool

// HideDetails controls whether unexpected errors expose their message and origin.
// It is switched on in production.
func HideDetails(hide bool) {
	hideDetails.Store(hide)
}

// Classify maps err to exactly one response. The first matching kind wins: session
// token mismatch, data store failure, validation, not found, unauthenticated, then
// anything else. file and line locate where the failure was rendered.
func Classify(err error, file string, line int) *Err {
	var verrs validation.Errors

	switch {
	case errors.Is(err, domain.ErrTokenMismatch):
		return &Err{
			Err:            err,
			HTTPStatusCode: StatusSessionExpired,
			Title:          "session expired",
			Message:        "refresh the page and try again",
		}
	case errors.Is(err, domain.ErrDataStore):
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusServiceUnavailable,
			Title:          "database unavailable",
			Message:        "service temporarily unavailable or the query failed",
		}
	case errors.As(err, &verrs):
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusUnprocessableEntity,
			Title:          "invalid data",
			Messages:       flatten(verrs),
		}
	case errors.Is(err, domain.ErrNotFound):
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			Title:          "not found",
			Message:        "the requested resource does not exist",
		}
	case errors.Is(err, domain.ErrUnauthenticated):
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusUnauthorized,
			Title:          "unauthenticated",
			Message:        "invalid credentials or missing session",
		}
	}

	if hideDetails.Load() {
		return &Err{
			Err:            err,
			HTTPStatusCode: http.StatusInternalServerError,
			Title:          "server error",
			Message:        "unexpected error",
		}
	}

	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Title:          "server error",
		Message:        err.Error(),
		File:           file,
		Line:           line,
	}
}

// RenderError classifies err, logs data store and unexpected failures, and aborts
// the request with the resulting body.
func RenderError(ctx *gin.Context, err error) {
	_, file, line, _ := runtime.Caller(1)
	renderAt(ctx, err, file, line)
}

func renderAt(ctx *gin.Context, err error, file string, line int) {
	resp := Classify(err, file, line)

	switch resp.HTTPStatusCode {
	case http.StatusServiceUnavailable:
		zap.L().Error("database error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Error(err),
		)
	case http.StatusInternalServerError:
		zap.L().Error("unexpected error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("file", file),
			zap.Int("line", line),
			zap.Error(err),
		)
	}

	ctx.AbortWithStatusJSON(resp.HTTPStatusCode, resp)
}

// RenderPanic renders a value recovered from a panic as an unexpected error.
func RenderPanic(ctx *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}

	file, line := panicSite()
	renderAt(ctx, err, file, line)
}

// panicSite finds the frame that panicked, skipping the runtime and gin frames.
func panicSite() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	sawPanic := false
	for {
		frame, more := frames.Next()
		if sawPanic {
			return frame.File, frame.Line
		}
		if frame.Function == "runtime.gopanic" {
			sawPanic = true
		}
		if !more {
			return "", 0
		}
	}
}

func flatten(verrs validation.Errors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	flattenInto(out, "", verrs)

	return out
}

func flattenInto(out map[string][]string, prefix string, verrs validation.Errors) {
	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		field := k
		if prefix != "" {
			field = prefix + "." + k
		}

		if verrs[k] == nil {
			continue
		}

		var nested validation.Errors
		if errors.As(verrs[k], &nested) {
			flattenInto(out, field, nested)
			continue
		}
		out[field] = append(out[field], verrs[k].Error())
	}
}
