package services

import (
	"errors"
	"inventory-api/apperrors"
	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"gorm.io/gorm"
)

const defaultLocationType = "General"

type ILocationService interface {
	FindAll(userID uint) (*[]models.Location, error)
	FindById(locationID uint, userID uint) (*models.Location, error)
	GetPath(locationID uint, userID uint) (*[]models.Location, error)
	Create(createLocationInput dto.CreateLocationInput, userID uint) (*models.Location, error)
	Update(locationID uint, userID uint, updateLocationInput dto.UpdateLocationInput) (*models.Location, error)
	Delete(locationID uint, userID uint) error
}

type LocationService struct {
	repository repositories.ILocationRepository
}

func NewLocationService(repository repositories.ILocationRepository) ILocationService {
	return &LocationService{repository: repository}
}

func (s *LocationService) FindAll(userID uint) (*[]models.Location, error) {
	return s.repository.FindAll(userID)
}

func (s *LocationService) FindById(locationID uint, userID uint) (*models.Location, error) {
	location, err := s.repository.FindById(locationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, err
	}
	return location, nil
}

// GetPath returns the chain of locations from the root down to the given
// node. The walk keeps a visited set so corrupted data cannot make it loop.
func (s *LocationService) GetPath(locationID uint, userID uint) (*[]models.Location, error) {
	var path []models.Location
	visited := map[uint]bool{}

	currentID := locationID
	for {
		if visited[currentID] {
			return nil, apperrors.ErrLocationCycle
		}
		visited[currentID] = true

		node, err := s.repository.FindNode(currentID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrLocationNotFound
			}
			return nil, err
		}
		path = append([]models.Location{*node}, path...)

		if node.ParentLocationID == nil {
			return &path, nil
		}
		currentID = *node.ParentLocationID
	}
}

func (s *LocationService) Create(createLocationInput dto.CreateLocationInput, userID uint) (*models.Location, error) {
	locationType := createLocationInput.LocationType
	if locationType == "" {
		locationType = defaultLocationType
	}

	if createLocationInput.ParentLocationID != nil {
		// The parent must exist and belong to the same owner. A fresh
		// location cannot have descendants, so no cycle check is needed
		// on create.
		exists, err := s.repository.ExistsForUser(*createLocationInput.ParentLocationID, userID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrLocationNotFound
		}
	}

	newLocation := models.Location{
		UserID:           userID,
		Name:             createLocationInput.Name,
		Description:      createLocationInput.Description,
		Address:          createLocationInput.Address,
		LocationType:     locationType,
		ParentLocationID: createLocationInput.ParentLocationID,
	}
	return s.repository.Create(newLocation)
}

// Update replaces the location's fields. Omitting parentLocationId detaches
// the location from its parent. The repository runs the cycle check in the
// same transaction as the write; a missing or foreign target, and a missing
// or foreign parent, both surface as not found.
func (s *LocationService) Update(locationID uint, userID uint, updateLocationInput dto.UpdateLocationInput) (*models.Location, error) {
	locationType := updateLocationInput.LocationType
	if locationType == "" {
		locationType = defaultLocationType
	}

	updates := map[string]interface{}{
		"name":               updateLocationInput.Name,
		"description":        updateLocationInput.Description,
		"address":            updateLocationInput.Address,
		"location_type":      locationType,
		"parent_location_id": updateLocationInput.ParentLocationID,
	}

	updatedLocation, err := s.repository.Update(locationID, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, err
	}
	return updatedLocation, nil
}

func (s *LocationService) Delete(locationID uint, userID uint) error {
	if err := s.repository.Delete(locationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return err
	}
	return nil
}
