package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "acredge/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPaginatedRoundsPagesUp(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Paginated(c, []string{"a", "b"}, 41, 3, 20))

	body := decode(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), data["totalPages"])
	assert.Equal(t, float64(41), data["total"])
	assert.Len(t, data["items"], 2)
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, apperrors.Validation([]string{"city is required"})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	info := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", info["code"])
	assert.Equal(t, []interface{}{"city is required"}, info["details"])
}

func TestErrorMapsEchoHTTPError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	info := decode(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "METHOD_NOT_ALLOWED", info["code"])
	assert.Equal(t, "nope", info["message"])
}

func TestErrorHidesForeignErrors(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decode(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL_ERROR", info["code"])
	assert.Equal(t, "An unexpected error occurred", info["message"])
}
