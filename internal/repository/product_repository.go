package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	// "" または "all" は全件
	Category string
	// name / description の部分一致（大文字小文字を区別しない）
	Q string
}

// 商品カタログ（一覧・詳細・おすすめ）の窓口。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Featured(ctx context.Context) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
}
