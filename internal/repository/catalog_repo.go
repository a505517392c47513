package repository

import (
	"context"

	"fornopos/internal/cache"
	"fornopos/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository serves the menu read paths the terminal needs and the
// plain CRUD saves used by seeding. Menu editing workflows live in the UI
// collaborator, outside this repo's scope.
type CatalogRepository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error)
	SaveCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	ListProducts(ctx context.Context, activeOnly bool) ([]model.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]model.Product, error)
	FindProductByID(ctx context.Context, id uint) (*model.Product, error)
	SaveProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error

	ToppingGroupsForProduct(ctx context.Context, productID uint) ([]model.ToppingGroup, error)
	SaveToppingGroup(ctx context.Context, g *model.ToppingGroup) error
	SaveToppingOption(ctx context.Context, o *model.ToppingOption) error
	SetProductToppingGroups(ctx context.Context, productID uint, groupIDs []uint) error
}

type catalogRepo struct {
	db *gorm.DB
	qc *cache.QueryCache
}

func NewCatalogRepository(db *gorm.DB, qc *cache.QueryCache) CatalogRepository {
	return &catalogRepo{db: db, qc: qc}
}

func (r *catalogRepo) invalidate() { r.qc.InvalidateTag(cache.TagCatalog) }

func (r *catalogRepo) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	const op = "Category.List"
	if v, ok := r.qc.Get(op, activeOnly); ok {
		return v.([]model.Category), nil
	}
	q := r.db.WithContext(ctx).Order("display_order, name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var cats []model.Category
	if err := q.Find(&cats).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, cats, cache.TagCatalog, activeOnly)
	return cats, nil
}

func (r *catalogRepo) SaveCategory(ctx context.Context, c *model.Category) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *catalogRepo) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Category{}, id).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, activeOnly bool) ([]model.Product, error) {
	const op = "Product.List"
	if v, ok := r.qc.Get(op, activeOnly); ok {
		return v.([]model.Product), nil
	}
	q := r.db.WithContext(ctx).Order("display_order, name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, products, cache.TagCatalog, activeOnly)
	return products, nil
}

func (r *catalogRepo) ListProductsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]model.Product, error) {
	const op = "Product.ListByCategory"
	if v, ok := r.qc.Get(op, categoryID, activeOnly); ok {
		return v.([]model.Product), nil
	}
	q := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("display_order, name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	r.qc.Set(op, products, cache.TagCatalog, categoryID, activeOnly)
	return products, nil
}

func (r *catalogRepo) FindProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) SaveProduct(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

// DeleteProduct removes the topping group links first — manual cleanup,
// same as order items.
func (r *catalogRepo) DeleteProduct(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductToppingGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
	if err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *catalogRepo) ToppingGroupsForProduct(ctx context.Context, productID uint) ([]model.ToppingGroup, error) {
	const op = "ToppingGroup.ForProduct"
	if v, ok := r.qc.Get(op, productID); ok {
		return v.([]model.ToppingGroup), nil
	}
	var groups []model.ToppingGroup
	err := r.db.WithContext(ctx).
		Joins("JOIN product_topping_groups ptg ON ptg.topping_group_id = topping_groups.id").
		Where("ptg.product_id = ? AND topping_groups.is_active = ?", productID, true).
		Order("topping_groups.display_order, topping_groups.name").
		Preload("Options", "is_active = ?", true).
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	r.qc.Set(op, groups, cache.TagCatalog, productID)
	return groups, nil
}

func (r *catalogRepo) SaveToppingGroup(ctx context.Context, g *model.ToppingGroup) error {
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *catalogRepo) SaveToppingOption(ctx context.Context, o *model.ToppingOption) error {
	if err := r.db.WithContext(ctx).Save(o).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *catalogRepo) SetProductToppingGroups(ctx context.Context, productID uint, groupIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&model.ProductToppingGroup{}).Error; err != nil {
			return err
		}
		for _, gid := range groupIDs {
			link := model.ProductToppingGroup{ProductID: productID, ToppingGroupID: gid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidate()
	return nil
}
