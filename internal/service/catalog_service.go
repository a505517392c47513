package service

import (
	"context"
	"fmt"
	"strings"

	"fornopos/internal/model"
	"fornopos/internal/repository"
)

// CatalogService serves the menu: categories, products and the topping
// groups attached to each product. The terminal reads it constantly, so the
// repository keeps these queries cached.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	return s.repo.ListCategories(ctx, activeOnly)
}

func (s *CatalogService) SaveCategory(ctx context.Context, c *model.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	return s.repo.SaveCategory(ctx, c)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	products, err := s.repo.ListProductsByCategory(ctx, id, false)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return fmt.Errorf("%w: category still has %d products", ErrInvalidInput, len(products))
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID uint, activeOnly bool) ([]model.Product, error) {
	if categoryID == 0 {
		return s.repo.ListProducts(ctx, activeOnly)
	}
	return s.repo.ListProductsByCategory(ctx, categoryID, activeOnly)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}

func (s *CatalogService) SaveProduct(ctx context.Context, p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}
	return s.repo.SaveProduct(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *CatalogService) ToppingGroupsForProduct(ctx context.Context, productID uint) ([]model.ToppingGroup, error) {
	return s.repo.ToppingGroupsForProduct(ctx, productID)
}

func (s *CatalogService) SaveToppingGroup(ctx context.Context, g *model.ToppingGroup) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return fmt.Errorf("%w: topping group name is required", ErrInvalidInput)
	}
	return s.repo.SaveToppingGroup(ctx, g)
}

func (s *CatalogService) SaveToppingOption(ctx context.Context, o *model.ToppingOption) error {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return fmt.Errorf("%w: topping option name is required", ErrInvalidInput)
	}
	if o.Price.IsNegative() {
		return fmt.Errorf("%w: topping price cannot be negative", ErrInvalidInput)
	}
	return s.repo.SaveToppingOption(ctx, o)
}

func (s *CatalogService) SetProductToppingGroups(ctx context.Context, productID uint, groupIDs []uint) error {
	if _, err := s.repo.FindProductByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.SetProductToppingGroups(ctx, productID, groupIDs)
}
