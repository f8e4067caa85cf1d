package service

import (
	"errors"
	"fmt"

	"go-productos-api/internal/model"
	"go-productos-api/internal/repository"
	"go-productos-api/internal/ws"
	"go-productos-api/pkg/validator"

	"github.com/google/uuid"
)

// CreateProductRequest is the client-writable part of a product. The owner is
// deliberately absent: it always comes from the authenticated caller, so a
// body carrying someone else's ownerId is simply ignored.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	Price    float64 `json:"price" validate:"min=0"`
}

// UpdateProductRequest is a partial update. Nil fields are left untouched;
// id and owner are not patchable.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

type ProductService interface {
	// CreateProduct persists a new product owned by ownerID. Any failure,
	// validation included, is reported as a plain error.
	CreateProduct(req *CreateProductRequest, ownerID string) (*model.Product, error)
	// GetAllProductsUser returns every product owned by ownerID. Zero
	// products is a successful empty slice, not an error.
	GetAllProductsUser(ownerID string) ([]model.Product, error)
	// GetProductByID returns repository.ErrProductNotFound when absent.
	GetProductByID(id uuid.UUID) (*model.Product, error)
	// UpdateProduct validates the patch, applies it and returns the updated
	// record. Absent id surfaces as repository.ErrProductNotFound.
	UpdateProduct(id uuid.UUID, patch *UpdateProductRequest) (*model.Product, error)
	// DeleteProduct removes the record and returns it for client-side
	// confirmation. Absent id surfaces as repository.ErrProductNotFound.
	DeleteProduct(id uuid.UUID) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func (s *productService) CreateProduct(req *CreateProductRequest, ownerID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if ownerID == "" {
		return nil, errors.New("missing owner identity")
	}

	product := &model.Product{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
		OwnerID:  ownerID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{Type: "product_created", OwnerID: product.OwnerID, Product: product})

	return product, nil
}

func (s *productService) GetAllProductsUser(ownerID string) ([]model.Product, error) {
	return s.productRepo.FindByOwner(ownerID)
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) UpdateProduct(id uuid.UUID, patch *UpdateProductRequest) (*model.Product, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, errors.New("validation failed: field 'name' must not be empty")
		}
		updates["name"] = *patch.Name
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, errors.New("validation failed: field 'quantity' must not be negative")
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, errors.New("validation failed: field 'price' must not be negative")
		}
		updates["price"] = *patch.Price
	}

	updated, err := s.productRepo.UpdateByID(id, updates)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{Type: "product_updated", OwnerID: updated.OwnerID, Product: updated})

	return updated, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) (*model.Product, error) {
	removed, err := s.productRepo.DeleteByID(id)
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{Type: "product_deleted", OwnerID: removed.OwnerID, Product: removed})

	return removed, nil
}
