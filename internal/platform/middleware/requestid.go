package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestID returns middleware that ensures every request has a correlation
// ID, preserving one supplied by the client and minting a UUID otherwise. The
// ID is stored on the echo context under "request_id" and echoed back in the
// response header.
// contextRequestID reads the correlation ID stored by RequestID; empty when
// the middleware did not run.
func contextRequestID(c echo.Context) string {
	rid, _ := c.Get("request_id").(string)
	return rid
}

func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
