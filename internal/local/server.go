// Package local adapts the deployed event handlers to a plain HTTP server
// for development (RUN_LOCAL=true).
package local

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
)

// HandlerFunc is the signature both checkout functions expose to the runtime.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Route wraps an event handler as a gin route. The incoming HTTP request is
// folded into the event envelope (method, body, single-value query params)
// and the envelope's status, headers and body are written back.
func Route(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusInternalServerError, "read body: %v", err)
			return
		}

		query := c.Request.URL.Query()
		var params map[string]string
		if len(query) > 0 {
			params = make(map[string]string, len(query))
			for key, values := range query {
				params[key] = values[0]
			}
		}

		req := events.APIGatewayProxyRequest{
			HTTPMethod:            c.Request.Method,
			Body:                  string(body),
			QueryStringParameters: params,
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil {
			c.String(http.StatusInternalServerError, "handler: %v", err)
			return
		}

		for key, value := range resp.Headers {
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
	}
}
