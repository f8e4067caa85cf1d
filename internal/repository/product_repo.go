package repository

import (
	"errors"
	"fmt"

	"go-productos-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository is the product store. FindByID, UpdateByID and DeleteByID
// return ErrProductNotFound when the record is absent; any other non-nil
// error is a real failure, and the two are distinguishable via errors.Is.
type ProductRepository interface {
	Create(product *model.Product) error
	FindByOwner(ownerID string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	// UpdateByID applies the given column updates and returns the post-update
	// record. ID and owner are never part of the updates.
	UpdateByID(id uuid.UUID, updates map[string]interface{}) (*model.Product, error)
	// DeleteByID removes the record permanently and returns it.
	DeleteByID(id uuid.UUID) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByOwner(ownerID string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Find(&products, "owner_id = ?", ownerID).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by id: %w", err)
	}
	return &product, nil
}

// UpdateByID locks the row for the duration of the transaction so concurrent
// updates serialize at the database (last write wins, no version column).
func (r *productRepo) UpdateByID(id uuid.UUID, updates map[string]interface{}) (*model.Product, error) {
	var updated model.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to load product for update: %w", err)
		}

		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}

		// Re-read so the caller gets the stored record, not our in-memory view
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to reload updated product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *productRepo) DeleteByID(id uuid.UUID) (*model.Product, error) {
	var removed model.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&removed, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to load product for delete: %w", err)
		}
		if err := tx.Delete(&model.Product{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}
