package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestJSONValid(t *testing.T) {
	var form loginForm
	errs, err := JSON(post(`{"email":"a@example.com","password":"secret"}`), &form)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.Equal(t, "a@example.com", form.Email)
}

func TestJSONValidationErrors(t *testing.T) {
	var form loginForm
	errs, err := JSON(post(`{"email":"not-an-email"}`), &form)
	require.NoError(t, err)
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "password")
}

func TestJSONEmptyBody(t *testing.T) {
	var form loginForm
	_, err := JSON(post(""), &form)
	require.EqualError(t, err, "request body is empty")
}

func TestJSONTrailingData(t *testing.T) {
	var form loginForm
	_, err := JSON(post(`{"email":"a@example.com","password":"x"} 42`), &form)
	require.EqualError(t, err, "unexpected data after JSON body")
}
