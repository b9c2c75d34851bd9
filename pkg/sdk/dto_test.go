package sdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccess(t *testing.T) {
	resp := NewSuccess("OK")

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Message)
	assert.Nil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestNewSuccessResponse(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := NewSuccessResponse("Data retrieved", data)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Data retrieved", resp.Message)
	assert.Equal(t, data, resp.Data)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(http.StatusBadRequest, "Invalid input", "field missing")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid input", resp.Message)
	assert.Equal(t, "field missing", resp.Error)
}

func TestAsGinResponse(t *testing.T) {
	resp := NewErrorResponse(http.StatusNotFound, "Not found", nil)

	code, body := resp.AsGinResponse()
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, resp, body)
}

func TestAsJSON(t *testing.T) {
	t.Run("success without data omits optional fields", func(t *testing.T) {
		out, err := NewSuccess("OK").AsJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","code":200,"message":"OK"}`, out)
	})

	t.Run("error carries the detail", func(t *testing.T) {
		out, err := NewErrorResponse(http.StatusInternalServerError, "Something broke", "details here").AsJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"error","code":500,"message":"Something broke","error":"details here"}`, out)
	})
}
