package middleware

import (
	"errors"
	"net/http"

	"lendhub/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the acting user's id on every non-user route.
const SharerHeader = "X-Sharer-User-Id"

const sharerIDKey = "sharer_user_id"

type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireSharerID rejects requests without a parseable sharer header.
// Whether the user actually exists is decided by the use cases.
func (m *IdentityMiddleware) RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest,
				errors.New("missing sharer header"), SharerHeader+" header is required")
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest,
				err, "Invalid "+SharerHeader+" header")
			return
		}
		c.Set(sharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sharerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
