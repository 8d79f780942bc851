// Package api holds the response envelopes shared by every handler. All
// bodies carry a boolean status; error bodies add the error kind, a message
// and, for validation failures only, the per-field details list.
package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/codewithjaspreet/og-backend/internal/apperr"
	"github.com/codewithjaspreet/og-backend/internal/logger"
)

type ErrorResponse struct {
	Status  bool           `json:"status"`
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details []apperr.Issue `json:"details,omitempty"`
}

type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// BindDocument reads the request body into a raw document for the schema
// layer. A missing body is treated as an empty document.
func BindDocument(c *gin.Context) (map[string]any, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

// RenderError logs the failure and writes the uniform error body. Internal
// detail stays in the logs; the caller only sees the kind, the message and
// any validation issues.
func RenderError(c *gin.Context, err *apperr.Error) {
	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"code", string(err.Kind),
		logger.Err(err),
	)

	c.JSON(err.Kind.HTTPStatus(), ErrorResponse{
		Status:  false,
		Error:   string(err.Kind),
		Message: err.Message,
		Details: err.Issues,
	})
}
