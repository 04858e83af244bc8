package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/types"
)

// handle decodes Req, runs fn and encodes its result or error
func handle[Req, Resp any](s *Server, fn func(ctx context.Context, req *Req) (Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		// an empty body is the empty message
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			s.writeError(c, badRequest("malformed request body: %v", err))
			return
		}

		resp, err := fn(c.Request.Context(), &req)
		if err != nil {
			s.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func parseProjectID(field, s string) (types.ProjectID, error) {
	id, err := types.ParseProjectID(s)
	if err != nil {
		return "", badRequest("%s: %v", field, err)
	}
	return id, nil
}

func parseColumnID(field, s string) (types.ColumnID, error) {
	id, err := types.ParseColumnID(s)
	if err != nil {
		return "", badRequest("%s: %v", field, err)
	}
	return id, nil
}

func parseBoardID(field, s string) (types.BoardID, error) {
	id, err := types.ParseBoardID(s)
	if err != nil {
		return "", badRequest("%s: %v", field, err)
	}
	return id, nil
}

// parseOptional parses an optional insertion point; nil and "" both mean the tail
func parseOptional[T any](field string, s *string, parse func(string, string) (T, error)) (*T, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := parse(field, *s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
