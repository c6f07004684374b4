package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// サンプル商品を投入（既存IDはそのまま）
func (r *ProductGormRepository) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}

// カテゴリ/検索語で絞り込み、ID順で返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	category := strings.TrimSpace(q.Category)
	if category != "" && !strings.EqualFold(category, "all") {
		tx = tx.Where("LOWER(category) = LOWER(?)", category)
	}

	// q name/descriptionを対象
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + term + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Featured(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Limit(featuredCount).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, len(catalogCategories))
	copy(out, catalogCategories)
	return out, nil
}
