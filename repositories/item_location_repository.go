package repositories

import (
	"inventory-api/models"

	"gorm.io/gorm"
)

type IItemLocationRepository interface {
	FindAll(userID uint) (*[]models.ItemLocation, error)
	FindById(id uint, userID uint) (*models.ItemLocation, error)
	FindByItem(itemID uint) (*[]models.ItemLocation, error)
	FindByLocation(locationID uint) (*[]models.ItemLocation, error)
	Exists(itemID uint, locationID uint) (bool, error)
	Create(newItemLocation models.ItemLocation) (*models.ItemLocation, error)
	UpdateQuantity(id uint, quantity int, version uint) (int64, error)
	Delete(id uint) error
}

type ItemLocationRepository struct {
	db *gorm.DB
}

func NewItemLocationRepository(db *gorm.DB) IItemLocationRepository {
	return &ItemLocationRepository{db: db}
}

// Ownership of an assignment is transitive through its item, so reads join
// items and filter on the item's owner instead of storing an owner column.
func (r *ItemLocationRepository) FindAll(userID uint) (*[]models.ItemLocation, error) {
	var itemLocations []models.ItemLocation
	result := r.db.
		Joins("JOIN items ON items.id = item_locations.item_id").
		Where("items.user_id = ?", userID).
		Preload("Item").
		Preload("Location").
		Find(&itemLocations)
	if result.Error != nil {
		return nil, result.Error
	}
	return &itemLocations, nil
}

func (r *ItemLocationRepository) FindById(id uint, userID uint) (*models.ItemLocation, error) {
	var itemLocation models.ItemLocation
	result := r.db.
		Joins("JOIN items ON items.id = item_locations.item_id").
		Where("item_locations.id = ? AND items.user_id = ?", id, userID).
		Preload("Item").
		Preload("Location").
		First(&itemLocation)
	if result.Error != nil {
		return nil, result.Error
	}
	return &itemLocation, nil
}

func (r *ItemLocationRepository) FindByItem(itemID uint) (*[]models.ItemLocation, error) {
	var itemLocations []models.ItemLocation
	result := r.db.
		Where("item_id = ?", itemID).
		Preload("Item").
		Preload("Location").
		Find(&itemLocations)
	if result.Error != nil {
		return nil, result.Error
	}
	return &itemLocations, nil
}

func (r *ItemLocationRepository) FindByLocation(locationID uint) (*[]models.ItemLocation, error) {
	var itemLocations []models.ItemLocation
	result := r.db.
		Where("location_id = ?", locationID).
		Preload("Item").
		Preload("Location").
		Find(&itemLocations)
	if result.Error != nil {
		return nil, result.Error
	}
	return &itemLocations, nil
}

func (r *ItemLocationRepository) Exists(itemID uint, locationID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.ItemLocation{}).
		Where("item_id = ? AND location_id = ?", itemID, locationID).
		Count(&count)
	return count > 0, result.Error
}

func (r *ItemLocationRepository) Create(newItemLocation models.ItemLocation) (*models.ItemLocation, error) {
	result := r.db.Create(&newItemLocation)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItemLocation, nil
}

// UpdateQuantity writes only when the stored version still matches the one
// the caller read. Zero rows affected means either a stale version or a
// vanished record; the service tells the two apart.
func (r *ItemLocationRepository) UpdateQuantity(id uint, quantity int, version uint) (int64, error) {
	result := r.db.Model(&models.ItemLocation{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"version":  gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

func (r *ItemLocationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ItemLocation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
