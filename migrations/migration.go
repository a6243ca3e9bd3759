package main

import (
	"inventory-api/infra"
	"inventory-api/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Location{},
		&models.ItemLocation{},
	); err != nil {
		panic("Failed to migrate database")
	}

	tokenDB := infra.SetupTokenDB()
	if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate token blacklist database")
	}
}
