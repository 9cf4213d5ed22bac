// Package params reads path and query parameters shared by the handlers.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrMissingID     = errors.New("missing id")
	ErrInvalidUserID = errors.New("invalid user id")
)

// UUID parses the path parameter name as a non-nil uuid.
func UUID(c *ginext.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrMissingID
	}

	return id, nil
}

// UserID parses the user_id path parameter.
func UserID(c *ginext.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}

	return id, nil
}

// Time parses an optional RFC 3339 query parameter, returning def when absent.
func Time(c *ginext.Context, name string, def time.Time) (time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return t.UTC(), nil
}

// Int parses an optional integer query parameter, returning def when absent.
func Int(c *ginext.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return n, nil
}
