package repositories

import (
	"inventory-api/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll(userID uint) (*[]models.Item, error)
	FindById(itemID uint, userID uint) (*models.Item, error)
	ExistsForUser(itemID uint, userID uint) (bool, error)
	Create(newItem models.Item) (*models.Item, error)
	Update(itemID uint, userID uint, updates map[string]interface{}) (*models.Item, error)
	Delete(itemID uint, userID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll(userID uint) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.
		Preload("ItemLocations.Location").
		Where("user_id = ?", userID).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindById(itemID uint, userID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.
		Preload("ItemLocations.Location").
		First(&item, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) ExistsForUser(itemID uint, userID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Count(&count)
	return count > 0, result.Error
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(itemID uint, userID uint, updates map[string]interface{}) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updatedItem models.Item
	if err := r.db.First(&updatedItem, "id = ?", itemID).Error; err != nil {
		return nil, err
	}
	return &updatedItem, nil
}

// Delete removes the item and its assignment rows in one transaction so a
// failure partway through leaves nothing half-deleted.
func (r *ItemRepository) Delete(itemID uint, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Item{}, "id = ? AND user_id = ?", itemID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.ItemLocation{}, "item_id = ?", itemID).Error
	})
}
