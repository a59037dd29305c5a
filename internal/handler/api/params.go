package api

import (
	"strconv"

	"lendhub/internal/pkg/page"

	"github.com/gin-gonic/gin"
)

// parsePage reads the optional from/size query pair.
func parsePage(c *gin.Context) (page.Spec, error) {
	var from, size *int
	if raw := c.Query("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return page.Spec{}, page.ErrInvalidPage
		}
		from = &v
	}
	if raw := c.Query("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return page.Spec{}, page.ErrInvalidPage
		}
		size = &v
	}
	return page.New(from, size)
}
