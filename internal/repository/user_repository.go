package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 既に登録済みのemail
var ErrEmailAlreadyExists = errors.New("email already exists")

// 登録済みユーザー（レジストリ）の約束。削除は公開しない。
type UserRepository interface {
	//メールからユーザーを一件取得する（完全一致）。
	FindByEmail(ctx context.Context, email string) (model.RegisteredUser, error)
	//新規ユーザー作成
	Create(ctx context.Context, user model.RegisteredUser) error
	//登録件数
	Count(ctx context.Context) (int, error)
}
