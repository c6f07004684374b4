package usecase

import (
	"storefront/internal/domain/model"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// bcryptが比較に使うのは先頭72バイトまで
const maxBcryptPasswordBytes = 72

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 72バイトを超える入力は一致しない扱い（先頭だけで一致させない）
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	if len(plain) > maxBcryptPasswordBytes {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}

// 起動時のレジストリ用にユーザーを作る（平文は保存しない）
func NewRegisteredUser(hasher PasswordHasher, id int64, name, email, password string) (model.RegisteredUser, error) {
	hashed, err := hasher.Hash(password)
	if err != nil {
		return model.RegisteredUser{}, err
	}
	return model.RegisteredUser{
		User:         model.User{ID: id, Name: name, Email: email},
		PasswordHash: hashed,
	}, nil
}
