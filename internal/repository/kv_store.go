package repository

import (
	"context"
	"errors"
)

// キーが存在しない
var ErrKeyNotFound = errors.New("key not found")

// セッション記録などを保存するキーバリューストア。
// ブラウザのlocalStorage相当。
type KeyValueStore interface {
	//無ければErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	//無くてもエラーにしない
	Delete(ctx context.Context, key string) error
}
