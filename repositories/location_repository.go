package repositories

import (
	"inventory-api/apperrors"
	"inventory-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ILocationRepository interface {
	FindAll(userID uint) (*[]models.Location, error)
	FindById(locationID uint, userID uint) (*models.Location, error)
	FindNode(locationID uint, userID uint) (*models.Location, error)
	ExistsForUser(locationID uint, userID uint) (bool, error)
	Create(newLocation models.Location) (*models.Location, error)
	Update(locationID uint, userID uint, updates map[string]interface{}) (*models.Location, error)
	Delete(locationID uint, userID uint) error
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) ILocationRepository {
	return &LocationRepository{db: db}
}

// lockForUpdate adds a row lock where the dialect supports it. sqlite has no
// FOR UPDATE syntax; its single-writer transactions serialize writes anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *LocationRepository) FindAll(userID uint) (*[]models.Location, error) {
	var locations []models.Location
	result := r.db.
		Preload("ParentLocation").
		Preload("ChildLocations").
		Preload("ItemLocations.Item").
		Where("user_id = ?", userID).
		Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}
	return &locations, nil
}

func (r *LocationRepository) FindById(locationID uint, userID uint) (*models.Location, error) {
	var location models.Location
	result := r.db.
		Preload("ParentLocation").
		Preload("ChildLocations").
		Preload("ItemLocations.Item").
		First(&location, "id = ? AND user_id = ?", locationID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &location, nil
}

// FindNode fetches the bare row without associations. Used by the path walk,
// which only needs the parent id.
func (r *LocationRepository) FindNode(locationID uint, userID uint) (*models.Location, error) {
	var location models.Location
	result := r.db.First(&location, "id = ? AND user_id = ?", locationID, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &location, nil
}

func (r *LocationRepository) ExistsForUser(locationID uint, userID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Location{}).
		Where("id = ? AND user_id = ?", locationID, userID).
		Count(&count)
	return count > 0, result.Error
}

func (r *LocationRepository) Create(newLocation models.Location) (*models.Location, error) {
	result := r.db.Create(&newLocation)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newLocation, nil
}

// Update writes the location inside one transaction with the cycle check:
// when a parent is being set, the proposed parent's ancestor chain is walked
// under row locks before the write commits, so two concurrent re-parents
// cannot each pass the check against the old state and persist a cycle.
func (r *LocationRepository) Update(locationID uint, userID uint, updates map[string]interface{}) (*models.Location, error) {
	var updatedLocation models.Location
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var target models.Location
		if err := lockForUpdate(tx).First(&target, "id = ? AND user_id = ?", locationID, userID).Error; err != nil {
			return err
		}

		if parentID, ok := updates["parent_location_id"].(*uint); ok && parentID != nil {
			if err := checkNoCycle(tx, locationID, *parentID, userID); err != nil {
				return err
			}
		}

		result := tx.Model(&models.Location{}).
			Where("id = ? AND user_id = ?", locationID, userID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updatedLocation, "id = ?", locationID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updatedLocation, nil
}

// checkNoCycle rejects a parent that is the location itself or any of its
// descendants, by walking the ancestor chain of the proposed parent. The
// parent must also exist and share the owner. Each walked row is locked so
// the chain cannot change under the walk.
func checkNoCycle(tx *gorm.DB, locationID uint, parentID uint, userID uint) error {
	if parentID == locationID {
		return apperrors.ErrLocationCycle
	}

	visited := map[uint]bool{locationID: true}
	currentID := parentID
	for {
		if visited[currentID] {
			return apperrors.ErrLocationCycle
		}
		visited[currentID] = true

		var node models.Location
		if err := lockForUpdate(tx).First(&node, "id = ? AND user_id = ?", currentID, userID).Error; err != nil {
			return err
		}
		if node.ParentLocationID == nil {
			return nil
		}
		if *node.ParentLocationID == locationID {
			return apperrors.ErrLocationCycle
		}
		currentID = *node.ParentLocationID
	}
}

// Delete verifies ownership before anything else: a location that is not the
// caller's must read as not found, never as "has children". The child check
// and the delete then run in the same transaction so a concurrent re-parent
// cannot slip in between. Assignment rows cascade, the parent link does not.
func (r *LocationRepository) Delete(locationID uint, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var target models.Location
		if err := lockForUpdate(tx).First(&target, "id = ? AND user_id = ?", locationID, userID).Error; err != nil {
			return err
		}

		var children int64
		if err := tx.Model(&models.Location{}).
			Where("parent_location_id = ?", locationID).
			Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return apperrors.ErrLocationHasChildren
		}

		result := tx.Delete(&models.Location{}, "id = ? AND user_id = ?", locationID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.ItemLocation{}, "location_id = ?", locationID).Error
	})
}
