package httpv1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, v any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest(ErrEmptyBody)
		}
		return badRequest(fmt.Errorf("malformed JSON: %w", err))
	}
	return nil
}

// bindJSON decodes the body into v, which must be a struct pointer, and validates it.
func bindJSON(c echo.Context, v any) error {
	if err := decodeJSON(c, v); err != nil {
		return err
	}
	return c.Validate(v)
}

func accountParam(c echo.Context) (string, error) {
	name := c.Param("account")
	if name == "" {
		return "", badRequest(ErrEmptyAccount)
	}
	return name, nil
}

func keywordIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, badRequest(ErrInvalidKeywordID)
	}
	return id, nil
}
