package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/utils"
)

// untrackedRoutes are never reported as analytics events.
var untrackedRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware reports every successful call made by an authenticated
// user as an analytics event named after its route, e.g. "put_vendors_id".
func PosthogMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	if !client.IsInitialized() {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" || untrackedRoutes[route] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       route,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if id := c.Param("id"); id != "" {
			props["record_id"] = id
		}
		client.Enqueue(strconv.FormatInt(userID, 10), routeEventName(c.Request.Method, route), props)
	}
}

func routeEventName(method, route string) string {
	route = strings.NewReplacer("/", "_", ":", "").Replace(strings.TrimPrefix(route, "/"))
	return strings.ToLower(method) + "_" + route
}
