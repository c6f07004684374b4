package repository

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// おすすめ商品の件数（トップページ）
const featuredCount = 4

// 一覧画面のカテゴリ
var catalogCategories = []string{"all", "vegetables", "fruits", "herbs", "organic"}

// サンプル商品（一覧・詳細・トップで共通のデータ）
func SampleProducts() []model.Product {
	return []model.Product{
		sample(1, "Organic Broccoli", "Fresh organic broccoli from local farms. Rich in vitamins and minerals, our broccoli is harvested at peak ripeness for maximum flavor and nutrition.", "2.99", "https://images.unsplash.com/photo-1615380217237-2d57a3e4d467?q=80&w=2940&auto=format&fit=crop", "vegetables"),
		sample(2, "Red Bell Peppers", "Sweet and crunchy red bell peppers. Perfect for salads, stir-fries, or roasting. Our peppers are grown without harmful pesticides.", "3.49", "https://images.unsplash.com/photo-1513530176992-0cf39c4cbed4?q=80&w=2940&auto=format&fit=crop", "vegetables"),
		sample(3, "Fresh Spinach", "Nutrient-rich spinach leaves. Packed with iron, vitamins, and antioxidants. Locally grown and harvested at peak freshness.", "1.99", "https://images.unsplash.com/photo-1576045057995-568f588f82fb?q=80&w=2940&auto=format&fit=crop", "greens"),
		sample(4, "Organic Tomatoes", "Ripe, organic tomatoes. Juicy, flavorful, and perfect for salads, sauces, or simply enjoying fresh. Grown with sustainable farming practices.", "2.75", "https://images.unsplash.com/photo-1582284540020-8acbe03f4924?q=80&w=2940&auto=format&fit=crop", "vegetables"),
		sample(5, "Fresh Strawberries", "Sweet and juicy strawberries. Our strawberries are picked at the peak of ripeness for maximum flavor and nutritional value.", "4.99", "https://images.unsplash.com/photo-1518635017498-87f514b751ba?q=80&w=2940&auto=format&fit=crop", "fruits"),
		sample(6, "Organic Carrots", "Crisp and sweet organic carrots. Perfect for snacking, cooking, or juicing. Our carrots are grown in rich soil without synthetic fertilizers.", "1.89", "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?q=80&w=2940&auto=format&fit=crop", "vegetables"),
		sample(7, "Fresh Basil", "Aromatic fresh basil. Add authentic flavor to your Italian dishes. Our basil is grown hydroponically for maximum flavor intensity.", "2.29", "https://images.unsplash.com/photo-1600692858810-6539c8413452?q=80&w=2960&auto=format&fit=crop", "herbs"),
		sample(8, "Organic Avocados", "Creamy organic avocados. Perfect for guacamole, toast, or adding to salads. Sustainably grown with eco-friendly practices.", "5.99", "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?q=80&w=2940&auto=format&fit=crop", "fruits"),
		sample(9, "Fresh Mint", "Refreshing mint leaves. Perfect for teas, cocktails, and culinary creations. Grown without harmful pesticides.", "1.99", "https://images.unsplash.com/photo-1628157611582-7431eb5eda6e?q=80&w=2940&auto=format&fit=crop", "herbs"),
		sample(10, "Red Onions", "Flavorful red onions. Essential for adding depth to countless recipes. Our onions are grown with traditional farming methods for the best flavor.", "1.29", "https://images.unsplash.com/photo-1618512496248-a07c50a5932d?q=80&w=2787&auto=format&fit=crop", "vegetables"),
		sample(11, "Organic Blueberries", "Organic antioxidant-rich blueberries. Our berries are grown without synthetic pesticides and are perfect for snacking, baking, or adding to smoothies.", "6.99", "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?q=80&w=2940&auto=format&fit=crop", "fruits"),
		sample(12, "Fresh Rosemary", "Aromatic rosemary sprigs. Perfect for roasts, potatoes, and Mediterranean dishes. Our rosemary is grown with sustainable practices.", "2.49", "https://images.unsplash.com/photo-1515586000433-45406d8e6662?q=80&w=2940&auto=format&fit=crop", "herbs"),
	}
}

func sample(id int64, name, description, price, image, category string) model.Product {
	return model.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Image:       image,
		Category:    category,
	}
}

// メモリ上の固定カタログ
type StaticProductRepository struct {
	products []model.Product
}

// DI
func NewStaticProductRepository(products []model.Product) *StaticProductRepository {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &StaticProductRepository{products: sorted}
}

// カテゴリと検索語で絞り込み
func (r *StaticProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// IDで商品を取得
func (r *StaticProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *StaticProductRepository) Featured(ctx context.Context) ([]model.Product, error) {
	n := featuredCount
	if len(r.products) < n {
		n = len(r.products)
	}
	out := make([]model.Product, n)
	copy(out, r.products[:n])
	return out, nil
}

func (r *StaticProductRepository) Categories(ctx context.Context) ([]string, error) {
	out := make([]string, len(catalogCategories))
	copy(out, catalogCategories)
	return out, nil
}

func matchesQuery(p model.Product, q repo.ProductListQuery) bool {
	category := strings.TrimSpace(q.Category)
	if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(p.Category, category) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(q.Q))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}
