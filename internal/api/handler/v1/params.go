package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

// pathID reads a numeric route parameter. Anything that cannot name a record is
// reported as not found.
func pathID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s %q: %w", name, ctx.Param(name), domain.ErrNotFound)
	}

	return uint(id), nil
}
