package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/arjunsharma6622/galaxygrow-server/config"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/database"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

// InitGlobal initializes the process wide state in dependency order.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initValidator registers the custom validators (no_xss,
// strong_password, objectid, exists).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB connects to MongoDB, makes sure every collection
// exists and builds the indexes declared on the models. The 2dsphere
// index on businesses backs the nearby search.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.Connect(context.TODO(), global.ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Users), models.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Vendors), models.Vendor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Businesses), models.Business{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Categories), models.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CategoryTitles), models.CategoryTitle{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Cities), models.City{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Posts), models.Post{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Ratings), models.Rating{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Enquiries), models.Enquiry{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CallLeads), models.CallLead{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Banners), models.Banner{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Blogs), models.Blog{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Packages), models.Package{})
	logrus.Info("Created collection indexes")
}
