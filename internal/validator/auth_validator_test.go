package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	v := NewAuthValidator()

	assert.NoError(t, v.ValidateLogin("test@example.com", "password123"))
	// 形式はチェックしない
	assert.NoError(t, v.ValidateLogin("not-an-email", "x"))

	assert.ErrorIs(t, v.ValidateLogin("", "password123"), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateLogin("   ", "password123"), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateLogin("test@example.com", ""), ErrInvalidInput)
}

func TestValidateRegister(t *testing.T) {
	v := NewAuthValidator()

	assert.NoError(t, v.ValidateRegister("Jane", "jane@example.com", "secret"))
	assert.ErrorIs(t, v.ValidateRegister(" ", "jane@example.com", "secret"), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateRegister("Jane", "", "secret"), ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateRegister("Jane", "jane@example.com", strings.Repeat("x", 73)), ErrInvalidInput)
}
