package services

import (
	"errors"
	"inventory-api/apperrors"
	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"gorm.io/gorm"
)

type IItemLocationService interface {
	FindAll(userID uint) (*[]models.ItemLocation, error)
	FindById(id uint, userID uint) (*models.ItemLocation, error)
	FindByItem(itemID uint, userID uint) (*[]models.ItemLocation, error)
	FindByLocation(locationID uint, userID uint) (*[]models.ItemLocation, error)
	Create(createInput dto.CreateItemLocationInput, userID uint) (*models.ItemLocation, error)
	Update(id uint, userID uint, updateInput dto.UpdateItemLocationInput) (*models.ItemLocation, error)
	Delete(id uint, userID uint) error
}

type ItemLocationService struct {
	repository         repositories.IItemLocationRepository
	itemRepository     repositories.IItemRepository
	locationRepository repositories.ILocationRepository
}

func NewItemLocationService(
	repository repositories.IItemLocationRepository,
	itemRepository repositories.IItemRepository,
	locationRepository repositories.ILocationRepository,
) IItemLocationService {
	return &ItemLocationService{
		repository:         repository,
		itemRepository:     itemRepository,
		locationRepository: locationRepository,
	}
}

func (s *ItemLocationService) FindAll(userID uint) (*[]models.ItemLocation, error) {
	return s.repository.FindAll(userID)
}

func (s *ItemLocationService) FindById(id uint, userID uint) (*models.ItemLocation, error) {
	itemLocation, err := s.repository.FindById(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemLocationNotFound
		}
		return nil, err
	}
	return itemLocation, nil
}

func (s *ItemLocationService) FindByItem(itemID uint, userID uint) (*[]models.ItemLocation, error) {
	owned, err := s.itemRepository.ExistsForUser(itemID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.ErrItemNotFound
	}
	return s.repository.FindByItem(itemID)
}

func (s *ItemLocationService) FindByLocation(locationID uint, userID uint) (*[]models.ItemLocation, error) {
	owned, err := s.locationRepository.ExistsForUser(locationID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.ErrLocationNotFound
	}
	return s.repository.FindByLocation(locationID)
}

// Create assigns an item to a location. Both ends must be owned by the
// caller; a missing or foreign id reads as not found either way. The unique
// index on (item_id, location_id) backs the duplicate pre-check when two
// creates race.
func (s *ItemLocationService) Create(createInput dto.CreateItemLocationInput, userID uint) (*models.ItemLocation, error) {
	if createInput.Quantity == nil || *createInput.Quantity < 0 {
		return nil, apperrors.ErrNegativeQuantity
	}

	owned, err := s.itemRepository.ExistsForUser(createInput.ItemID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.ErrItemNotFound
	}

	owned, err = s.locationRepository.ExistsForUser(createInput.LocationID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.ErrLocationNotFound
	}

	exists, err := s.repository.Exists(createInput.ItemID, createInput.LocationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateAssignment
	}

	newItemLocation := models.ItemLocation{
		ItemID:     createInput.ItemID,
		LocationID: createInput.LocationID,
		Quantity:   *createInput.Quantity,
		Version:    1,
	}
	created, err := s.repository.Create(newItemLocation)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateAssignment
		}
		return nil, err
	}
	return created, nil
}

// Update changes only the quantity. The caller passes the version it last
// read; a stale version means someone else wrote in between, and the caller
// must re-read and retry.
func (s *ItemLocationService) Update(id uint, userID uint, updateInput dto.UpdateItemLocationInput) (*models.ItemLocation, error) {
	if updateInput.Quantity == nil || *updateInput.Quantity < 0 {
		return nil, apperrors.ErrNegativeQuantity
	}
	if updateInput.Version == nil {
		return nil, apperrors.ErrConcurrentModification
	}

	if _, err := s.FindById(id, userID); err != nil {
		return nil, err
	}

	rows, err := s.repository.UpdateQuantity(id, *updateInput.Quantity, *updateInput.Version)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Distinguish a stale version from a record deleted since the
		// ownership check above.
		if _, err := s.repository.FindById(id, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrItemLocationNotFound
			}
			return nil, err
		}
		return nil, apperrors.ErrConcurrentModification
	}

	return s.FindById(id, userID)
}

func (s *ItemLocationService) Delete(id uint, userID uint) error {
	if _, err := s.FindById(id, userID); err != nil {
		return err
	}

	if err := s.repository.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemLocationNotFound
		}
		return err
	}
	return nil
}
