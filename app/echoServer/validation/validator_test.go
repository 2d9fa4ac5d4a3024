package validation

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=0"`
}

func TestValidate_FlattensFieldErrors(t *testing.T) {
	err := New().Validate(payload{Email: "nope", Age: -1})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)

	body, ok := he.Message.(echo.Map)
	require.True(t, ok)
	require.Equal(t, "validation error", body["message"])
	require.ElementsMatch(t, []string{"Email email", "Age gte"}, body["fields"])
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, New().Validate(payload{Email: "budi@example.com", Age: 3}))
}
