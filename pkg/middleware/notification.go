package middleware

import (
	"github.com/gin-gonic/gin"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

// NotificationMiddleware forwards the notification a handler sent to the
// client into sink.
func NotificationMiddleware(sink notify.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		v, ok := c.Get(utils.NotificationKey)
		if !ok {
			return
		}
		if n, ok := v.(notify.Notification); ok {
			sink.Notify(c.Request.Context(), n)
		}
	}
}
