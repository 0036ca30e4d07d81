package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aulakit/aula-backend/internal/platform/ctxutil"
)

// AttachRequestContext assigns a request id and resolves the acting teacher
// from the X-Teacher-ID header. Authorization happens outside this service;
// the header only identifies who to attribute changes to.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		td := &ctxutil.TraceData{
			RequestID: uuid.New().String(),
		}
		if raw := c.GetHeader("X-Teacher-ID"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				td.TeacherID = uint(id)
			}
		}
		ctx := ctxutil.WithTraceData(c.Request.Context(), td)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", td.RequestID)
		c.Next()
	}
}
