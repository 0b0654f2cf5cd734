package request

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Bind decodes the request body into req by content type: JSON, urlencoded or
// multipart form. An empty body binds nothing. Decoding failures come back as
// validation errors keyed by the offending field where it is known.
func Bind(ctx *gin.Context, req interface{}) error {
	err := ctx.ShouldBind(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.Errors{typeErr.Field: errors.New("must be a valid " + typeErr.Value)}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return validation.Errors{"body": errors.New("invalid value " + strconv.Quote(numErr.Num))}
	}

	return validation.Errors{"body": err}
}
