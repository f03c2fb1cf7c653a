package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/dto"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/services"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
)

// InitDefaultData seeds the reference data a fresh deployment needs.
// Everything here is idempotent, existing data is never touched.
func InitDefaultData() {
	log := logger.GetAppLogger()

	packageService, err := services.NewPackageService()
	if err != nil {
		log.Fatalf("Failed to initialize package service: %v", err)
	}

	count, err := packageService.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		log.Warnf("Failed to count packages, skipping package seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := []dto.PackageCreateInput{
		{
			Name:     "Free",
			Price:    0,
			Category: "service",
			Features: []string{"Business listing", "Customer enquiries"},
		},
		{
			Name:      "Premium",
			Price:     4999,
			PrevPrice: 7999,
			Category:  "service",
			Features:  []string{"Business listing", "Customer enquiries", "Call leads", "Priority placement"},
		},
	}

	if _, err := packageService.CreateMany(context.TODO(), defaults); err != nil {
		log.Warnf("Failed to seed default packages: %v", err)
		return
	}

	log.Info("Seeded default subscription packages")
}
