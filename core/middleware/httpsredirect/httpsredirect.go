package httpsredirect

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// New redirects plain HTTP requests from non-local hosts to https with a 301.
// The scheme is taken from X-Forwarded-Proto since TLS terminates at the proxy.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		host := c.Hostname()
		if isLocal(host) {
			return c.Next()
		}
		proto := strings.ToLower(c.Get(fiber.HeaderXForwardedProto))
		if proto != "" && proto != "http" {
			return c.Next()
		}
		return c.Redirect("https://"+host+c.OriginalURL(), fiber.StatusMovedPermanently)
	}
}

func isLocal(host string) bool {
	return strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.0.0.1")
}
