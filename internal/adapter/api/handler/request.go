package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"acredge/internal/adapter/api/middleware"
	"acredge/internal/domain/entity"
	"acredge/internal/domain/service"
	"acredge/internal/usecase"
	"acredge/pkg/errors"
	"acredge/pkg/logger"
)

// readInput collects text fields and files from a multipart form, or text
// fields from a JSON body.
func readInput(c echo.Context) (usecase.SagaInput, error) {
	in := usecase.SagaInput{Fields: entity.Fields{}}

	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return in, errors.BadRequest("Invalid multipart form", err)
		}

		for key, values := range form.Value {
			if len(values) == 1 {
				in.Fields[key] = values[0]
			} else {
				in.Fields[key] = append([]string{}, values...)
			}
		}

		for field, headers := range form.File {
			for _, fh := range headers {
				fh := fh
				in.Files = append(in.Files, service.IncomingFile{
					Field:    field,
					Filename: fh.Filename,
					Size:     fh.Size,
					Open: func() (io.ReadCloser, error) {
						return fh.Open()
					},
				})
			}
		}

		logger.Debug("multipart request: %d fields, %d files", len(in.Fields), len(in.Files))
		return in, nil
	}

	if c.Request().ContentLength == 0 {
		return in, nil
	}

	body := map[string]interface{}{}
	if err := c.Bind(&body); err != nil {
		return in, errors.BadRequest("Invalid request body", err)
	}
	in.Fields = entity.Fields(body)
	return in, nil
}

// currentUser returns the identity set by the auth middleware.
func currentUser(c echo.Context) (*entity.Identity, error) {
	identity, ok := c.Get(middleware.UserKey).(*entity.Identity)
	if !ok || identity == nil {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return identity, nil
}

func setSessionCookie(c echo.Context, session *usecase.Session, secure bool) {
	c.SetCookie(sessionCookie(session.Token, int(session.MaxAge(time.Now()).Seconds()), secure))
}

func clearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(sessionCookie("", -1, secure))
}

func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	sameSite := http.SameSiteNoneMode
	if !secure {
		// browsers reject SameSite=None without Secure
		sameSite = http.SameSiteLaxMode
	}
	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}
