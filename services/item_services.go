package services

import (
	"errors"
	"inventory-api/apperrors"
	"inventory-api/dto"
	"inventory-api/models"
	"inventory-api/repositories"

	"gorm.io/gorm"
)

type IItemService interface {
	FindAll(userID uint) (*[]models.Item, error)
	FindById(itemID uint, userID uint) (*models.Item, error)
	Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, userID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint, userID uint) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll(userID uint) (*[]models.Item, error) {
	return s.repository.FindAll(userID)
}

func (s *ItemService) FindById(itemID uint, userID uint) (*models.Item, error) {
	item, err := s.repository.FindById(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Create stamps the owner from the authenticated caller; a client-supplied
// owner field is never trusted.
func (s *ItemService) Create(createItemInput dto.CreateItemInput, userID uint) (*models.Item, error) {
	newItem := models.Item{
		UserID:      userID,
		Name:        createItemInput.Name,
		Price:       *createItemInput.Price,
		Description: createItemInput.Description,
		SKU:         createItemInput.SKU,
	}
	return s.repository.Create(newItem)
}

func (s *ItemService) Update(itemID uint, userID uint, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	updates := map[string]interface{}{}
	if updateItemInput.Name != nil {
		updates["name"] = *updateItemInput.Name
	}
	if updateItemInput.Price != nil {
		updates["price"] = *updateItemInput.Price
	}
	if updateItemInput.Description != nil {
		updates["description"] = *updateItemInput.Description
	}
	if updateItemInput.SKU != nil {
		updates["sku"] = *updateItemInput.SKU
	}
	if len(updates) == 0 {
		return s.FindById(itemID, userID)
	}

	updatedItem, err := s.repository.Update(itemID, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return updatedItem, nil
}

func (s *ItemService) Delete(itemID uint, userID uint) error {
	if err := s.repository.Delete(itemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemNotFound
		}
		return err
	}
	return nil
}
