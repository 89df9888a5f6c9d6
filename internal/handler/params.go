package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/techclub-site/pkg/errors"
)

var errPageNotFound = appErrors.Clone(appErrors.ErrNotFound, "page not found")

func idParam(c *gin.Context) (int, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer")
	}
	return id, nil
}
