package httpv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidKeywordID = errors.New("invalid keyword id")
	ErrEmptyBody        = errors.New("request body is empty")
	ErrEmptyAccount     = errors.New("account name is empty")
)

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"uri":   c.Request().RequestURI,
			"error": err,
		}).Error("Request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Type: "error", Message: message})
	}
	if err != nil {
		log.WithField("error", err).Error("Failed to write error response")
	}
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
