package validator

import (
	"errors"
	"strings"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

// bcryptが扱える長さ（バイト）
const maxPasswordBytes = 72

type AuthValidator struct{}

// DI
func NewAuthValidator() *AuthValidator {
	return &AuthValidator{}
}

// サインアップの入力を検証（必須のみ、形式はチェックしない）
func (v *AuthValidator) ValidateRegister(name string, email string, password string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	if len(password) > maxPasswordBytes {
		return ErrInvalidInput
	}
	return v.ValidateLogin(email, password)
}

// ログインの入力を検証
func (v *AuthValidator) ValidateLogin(email string, password string) error {
	// 必須チェック
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrInvalidInput
	}
	return nil
}
