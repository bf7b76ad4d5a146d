package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"wings_inventory/internal/common"
	"wings_inventory/internal/domain/model"
	"wings_inventory/internal/domain/repository"
)

// Bounds of the products table: price NUMERIC(12,2), quantity INTEGER.
const (
	maxPriceExclusive = 1e10
	priceScale        = 2
	maxQuantity       = math.MaxInt32
)

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductRequest is the input schema shared by create and update. Update is
// a full replacement, so an omitted description or category is stored empty.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       Numeric `json:"price"`
	Quantity    Numeric `json:"quantity"`
}

// ToProduct validates the request and converts it to a record.
func (r ProductRequest) ToProduct() (*model.Product, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, common.Validationf("name is required")
	}
	if !r.Price.IsSet() {
		return nil, common.Validationf("price is required")
	}
	price, ok := r.Price.Float()
	if !ok {
		return nil, common.Validationf("price must be numeric")
	}
	if price < 0 {
		return nil, common.Validationf("price must not be negative")
	}
	if price >= maxPriceExclusive {
		return nil, common.Validationf("price must be less than %.0f", maxPriceExclusive)
	}
	if !r.Price.FitsScale(priceScale) {
		return nil, common.Validationf("price must have at most %d decimal places", priceScale)
	}
	if !r.Quantity.IsSet() {
		return nil, common.Validationf("quantity is required")
	}
	qty, ok := r.Quantity.Int()
	if !ok {
		return nil, common.Validationf("quantity must be a whole number")
	}
	if qty < 0 {
		return nil, common.Validationf("quantity must not be negative")
	}
	if qty > maxQuantity {
		return nil, common.Validationf("quantity must be at most %d", maxQuantity)
	}
	return &model.Product{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       price,
		Quantity:    qty,
	}, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req ProductRequest) (*model.Product, error) {
	product, err := req.ToProduct()
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	if err := validateProductID(id); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*model.Product, error) {
	if err := validateProductID(id); err != nil {
		return nil, err
	}
	product, err := req.ToProduct()
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := validateProductID(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func validateProductID(id int64) error {
	if id <= 0 {
		return common.Validationf("product id must be a positive integer")
	}
	return nil
}
