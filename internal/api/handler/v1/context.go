package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadID = errors.New("identifier must be a positive integer")

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errBadID
	}

	return uint(id), nil
}
