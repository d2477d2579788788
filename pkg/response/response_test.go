package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"findit-backend/pkg/apperror"
	"findit-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupBody struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,phone"`
}

func newContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestError_TypedErrorKeepsMessage(t *testing.T) {
	c, w := newContext(t, "")

	Error(c, quietLogger(), fmt.Errorf("join: %w", apperror.NotFound("Group not found")))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Group not found"}`, w.Body.String())
}

func TestError_InternalIsHidden(t *testing.T) {
	c, w := newContext(t, "")

	Error(c, quietLogger(), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq")
}

func TestBindError_FieldLevelDetail(t *testing.T) {
	require.NoError(t, validation.Register())
	c, w := newContext(t, `{"email":"not-an-email","phone":"12345"}`)

	var body signupBody
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []validation.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "Invalid email format", resp.Errors[0].Message)
	assert.Equal(t, "phone", resp.Errors[1].Field)
	assert.Equal(t, "Phone number must be exactly 10 digits", resp.Errors[1].Message)
}

func TestBindError_MalformedJSON(t *testing.T) {
	c, w := newContext(t, `{"email":`)

	var body signupBody
	err := c.ShouldBindJSON(&body)
	require.Error(t, err)
	BindError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())
}
