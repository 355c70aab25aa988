package helpers

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// GetBearerToken extracts the bearer token from the Authorization header of a
// request. An empty string means no usable token was supplied.
func GetBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
}
