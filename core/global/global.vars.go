package global

import (
	"github.com/arjunsharma6622/galaxygrow-server/config"
	"github.com/arjunsharma6622/galaxygrow-server/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames holds the MongoDB collection names used by the server.
type CollectionNames struct {
	Users          string
	Vendors        string
	Businesses     string
	Categories     string
	CategoryTitles string
	Cities         string
	Posts          string
	Ratings        string
	Enquiries      string
	CallLeads      string
	Banners        string
	Blogs          string
	Packages       string
}

// Global variables
var Validate *validator.Validate           // input validation
var MongoDB_Session *mongo.Client          // MongoDB client session
var ServerConfig *config.Configuration     // server configuration
var ColNames = CollectionNames{
	Users:          "users",
	Vendors:        "vendors",
	Businesses:     "businesses",
	Categories:     "categories",
	CategoryTitles: "category_titles",
	Cities:         "cities",
	Posts:          "posts",
	Ratings:        "ratings",
	Enquiries:      "enquiries",
	CallLeads:      "call_leads",
	Banners:        "banners",
	Blogs:          "blogs",
	Packages:       "packages",
}

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // collections by name
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // databases by name
