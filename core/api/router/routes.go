package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/arjunsharma6622/galaxygrow-server/core/api/handler"
	"github.com/arjunsharma6622/galaxygrow-server/core/api/middleware"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
)

// NOTE on middleware registration: Fiber v3 does not reliably run
// middleware passed inline as router.Get(path, middleware, handler).
// Every guarded route here goes through registerRouteWithMiddleware,
// which attaches the middleware with .Use() on a per-route group.

// RoutePrefix holds the version prefixes of the API.
type RoutePrefix struct {
	V1 string
}

// NewRoutePrefix returns the default API prefixes.
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{V1: "/api/v1"}
}

// Router wires handlers onto the Fiber app.
type Router struct {
	app *fiber.App
}

// NewRouter creates a new instance of Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// registerRouteWithMiddleware registers a route whose middleware is
// attached via .Use() on a dedicated group, the only form Fiber v3
// honors.
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// registerAuthRoutes wires login, registration, session inspection and
// the OTP password reset flow.
func (r *Router) registerAuthRoutes(router fiber.Router) error {
	authHandler, err := handler.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %v", err)
	}

	router.Post("/auth/login", authHandler.HandleLogin)
	router.Post("/auth/register", authHandler.HandleRegisterUser)
	router.Post("/auth/vendor/register", authHandler.HandleRegisterVendor)
	router.Post("/auth/logout", authHandler.HandleLogout)
	router.Post("/auth/otp/request", authHandler.HandleRequestOTP)
	router.Post("/auth/otp/verify", authHandler.HandleVerifyOTP)
	router.Post("/auth/reset-password", authHandler.HandleResetPassword)

	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)
	registerRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{anyPrincipal}, authHandler.HandleMe)

	return nil
}

// registerUserRoutes wires the user profile and the admin account
// listings.
func (r *Router) registerUserRoutes(router fiber.Router) error {
	userHandler, err := handler.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	registerRouteWithMiddleware(router, "/user", "GET", "/", []fiber.Handler{userOnly}, userHandler.HandleGetSelf)
	registerRouteWithMiddleware(router, "/user", "PATCH", "/", []fiber.Handler{userOnly}, userHandler.HandleUpdateSelf)
	registerRouteWithMiddleware(router, "/user", "GET", "/all-users", []fiber.Handler{userOnly, adminOnly}, userHandler.HandleListUsers)
	registerRouteWithMiddleware(router, "/user", "GET", "/all-vendors", []fiber.Handler{userOnly, adminOnly}, userHandler.HandleListVendors)
	registerRouteWithMiddleware(router, "/user", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, userHandler.HandleDelete)

	return nil
}

// registerVendorRoutes wires the vendor profile and the vendor
// dashboard.
func (r *Router) registerVendorRoutes(router fiber.Router) error {
	vendorHandler, err := handler.NewVendorHandler()
	if err != nil {
		return fmt.Errorf("failed to create vendor handler: %v", err)
	}

	vendorOnly := middleware.Authenticated(middleware.NamespaceVendor)
	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)
	adminOrVendor := middleware.RequireRole(models.RoleAdmin, models.RoleVendor)

	router.Get("/vendor/all", vendorHandler.HandleListAll)

	registerRouteWithMiddleware(router, "/vendor", "GET", "/", []fiber.Handler{vendorOnly}, vendorHandler.HandleGetSelf)
	registerRouteWithMiddleware(router, "/vendor", "PATCH", "/", []fiber.Handler{vendorOnly}, vendorHandler.HandleUpdateSelf)
	registerRouteWithMiddleware(router, "/vendor", "GET", "/businesses", []fiber.Handler{vendorOnly}, vendorHandler.HandleBusinesses)
	registerRouteWithMiddleware(router, "/vendor", "GET", "/call-leads/stats", []fiber.Handler{vendorOnly}, vendorHandler.HandleCallLeadStats)
	registerRouteWithMiddleware(router, "/vendor", "DELETE", "/:id", []fiber.Handler{anyPrincipal, adminOrVendor}, vendorHandler.HandleDelete)

	return nil
}

// registerBusinessRoutes wires the public directory reads and the
// owner guarded writes. Literal paths go first so they are not
// swallowed by the :id parameter.
func (r *Router) registerBusinessRoutes(router fiber.Router) error {
	businessHandler, err := handler.NewBusinessHandler()
	if err != nil {
		return fmt.Errorf("failed to create business handler: %v", err)
	}

	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)
	adminOrVendor := middleware.RequireRole(models.RoleAdmin, models.RoleVendor)

	router.Get("/business/nearby", businessHandler.HandleNearby)
	router.Get("/business/count", businessHandler.HandleCount)
	router.Get("/business/by-name/:businessName", businessHandler.HandleGetByName)
	router.Get("/business/by-category/:categoryId", businessHandler.HandleGetByCategory)
	router.Get("/business/", businessHandler.HandleListAll)
	router.Get("/business/:id", businessHandler.HandleGetByID)

	registerRouteWithMiddleware(router, "/business", "POST", "/register", []fiber.Handler{anyPrincipal, adminOrVendor}, businessHandler.HandleRegister)
	registerRouteWithMiddleware(router, "/business", "PUT", "/:id", []fiber.Handler{anyPrincipal, adminOrVendor}, businessHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/business", "PATCH", "/:id/payment-icon", []fiber.Handler{anyPrincipal, adminOrVendor}, businessHandler.HandleUpdatePaymentIcon)
	registerRouteWithMiddleware(router, "/business", "DELETE", "/:id", []fiber.Handler{anyPrincipal, adminOrVendor}, businessHandler.HandleDelete)

	return nil
}

// registerLocationRoutes wires the geocoding proxy.
func (r *Router) registerLocationRoutes(router fiber.Router) error {
	locationHandler := handler.NewLocationHandler()

	router.Get("/location/from-coords", locationHandler.HandleFromCoords)
	router.Get("/location/autocomplete", locationHandler.HandleAutocomplete)
	router.Get("/location/from-address", locationHandler.HandleFromAddress)

	return nil
}

// registerPostRoutes wires business posts.
func (r *Router) registerPostRoutes(router fiber.Router) error {
	postHandler, err := handler.NewPostHandler()
	if err != nil {
		return fmt.Errorf("failed to create post handler: %v", err)
	}

	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)
	adminOrVendor := middleware.RequireRole(models.RoleAdmin, models.RoleVendor)

	router.Get("/post/business/:businessId", postHandler.HandleGetByBusiness)
	router.Get("/post/", postHandler.HandleListAll)
	router.Get("/post/:id", postHandler.HandleGetByID)

	registerRouteWithMiddleware(router, "/post", "POST", "/", []fiber.Handler{anyPrincipal, adminOrVendor}, postHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/post", "PATCH", "/:id", []fiber.Handler{anyPrincipal, adminOrVendor}, postHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/post", "DELETE", "/:id", []fiber.Handler{anyPrincipal, adminOrVendor}, postHandler.HandleDelete)

	return nil
}

// registerRatingRoutes wires business ratings. Reading is public,
// writing needs any authenticated principal.
func (r *Router) registerRatingRoutes(router fiber.Router) error {
	ratingHandler, err := handler.NewRatingHandler()
	if err != nil {
		return fmt.Errorf("failed to create rating handler: %v", err)
	}

	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)

	router.Get("/rating/:businessId", ratingHandler.HandleSummary)

	registerRouteWithMiddleware(router, "/rating", "POST", "/:businessId", []fiber.Handler{anyPrincipal}, ratingHandler.HandleCreate)

	return nil
}

// registerEnquiryRoutes wires enquiry submission and admin triage.
func (r *Router) registerEnquiryRoutes(router fiber.Router) error {
	enquiryHandler, err := handler.NewEnquiryHandler()
	if err != nil {
		return fmt.Errorf("failed to create enquiry handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Post("/enquiry/", enquiryHandler.HandleCreate)

	registerRouteWithMiddleware(router, "/enquiry", "GET", "/", []fiber.Handler{userOnly, adminOnly}, enquiryHandler.HandleListAll)
	registerRouteWithMiddleware(router, "/enquiry", "GET", "/:id", []fiber.Handler{userOnly, adminOnly}, enquiryHandler.HandleGetByID)
	registerRouteWithMiddleware(router, "/enquiry", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, enquiryHandler.HandleUpdateStatus)
	registerRouteWithMiddleware(router, "/enquiry", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, enquiryHandler.HandleDelete)

	return nil
}

// registerCallLeadRoutes wires call lead capture and verification.
func (r *Router) registerCallLeadRoutes(router fiber.Router) error {
	callLeadHandler, err := handler.NewCallLeadHandler()
	if err != nil {
		return fmt.Errorf("failed to create call lead handler: %v", err)
	}

	anyPrincipal := middleware.Authenticated(middleware.NamespaceAny)
	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Post("/call-lead/", callLeadHandler.HandleCreate)
	router.Post("/call-lead/verify", callLeadHandler.HandleVerify)

	registerRouteWithMiddleware(router, "/call-lead", "POST", "/verified", []fiber.Handler{anyPrincipal}, callLeadHandler.HandleCreateVerified)
	registerRouteWithMiddleware(router, "/call-lead", "GET", "/", []fiber.Handler{userOnly, adminOnly}, callLeadHandler.HandleListAll)
	registerRouteWithMiddleware(router, "/call-lead", "GET", "/:id", []fiber.Handler{userOnly, adminOnly}, callLeadHandler.HandleGetByID)
	registerRouteWithMiddleware(router, "/call-lead", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, callLeadHandler.HandleDelete)

	return nil
}

// registerCategoryRoutes wires categories and their title groups.
func (r *Router) registerCategoryRoutes(router fiber.Router) error {
	categoryHandler, err := handler.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Get("/category/by-name/:categoryName", categoryHandler.HandleGetByName)
	router.Get("/category/", categoryHandler.HandleListAll)
	router.Get("/category/:id", categoryHandler.HandleGetByID)
	router.Get("/category-title/", categoryHandler.HandleListTitles)

	// The /category-title groups must be registered before any guarded
	// /category group. Group middleware matches on the raw path prefix,
	// so a /category guard registered first would also run for every
	// /category-title request.
	registerRouteWithMiddleware(router, "/category-title", "POST", "/", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleCreateTitle)
	registerRouteWithMiddleware(router, "/category-title", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleUpdateTitle)
	registerRouteWithMiddleware(router, "/category-title", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleDeleteTitle)

	registerRouteWithMiddleware(router, "/category", "POST", "/", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/category", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/category", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleDelete)
	registerRouteWithMiddleware(router, "/category", "POST", "/backfill-business-type", []fiber.Handler{userOnly, adminOnly}, categoryHandler.HandleBackfillBusinessType)

	return nil
}

// registerCityRoutes wires the serviceable city list.
func (r *Router) registerCityRoutes(router fiber.Router) error {
	cityHandler, err := handler.NewCityHandler()
	if err != nil {
		return fmt.Errorf("failed to create city handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Get("/city/", cityHandler.HandleListAll)
	router.Get("/city/:cityName", cityHandler.HandleGetByName)

	registerRouteWithMiddleware(router, "/city", "POST", "/", []fiber.Handler{userOnly, adminOnly}, cityHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/city", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, cityHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/city", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, cityHandler.HandleDelete)

	return nil
}

// registerBannerRoutes wires promotional banners.
func (r *Router) registerBannerRoutes(router fiber.Router) error {
	bannerHandler, err := handler.NewBannerHandler()
	if err != nil {
		return fmt.Errorf("failed to create banner handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Get("/banner/", bannerHandler.HandleListAll)

	registerRouteWithMiddleware(router, "/banner", "POST", "/", []fiber.Handler{userOnly, adminOnly}, bannerHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/banner", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, bannerHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/banner", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, bannerHandler.HandleDelete)

	return nil
}

// registerBlogRoutes wires blog articles.
func (r *Router) registerBlogRoutes(router fiber.Router) error {
	blogHandler, err := handler.NewBlogHandler()
	if err != nil {
		return fmt.Errorf("failed to create blog handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Get("/blog/category/:categoryName", blogHandler.HandleGetByCategory)
	router.Get("/blog/", blogHandler.HandleListAll)
	router.Get("/blog/:id", blogHandler.HandleGetByID)

	registerRouteWithMiddleware(router, "/blog", "POST", "/", []fiber.Handler{userOnly, adminOnly}, blogHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/blog", "PATCH", "/:id", []fiber.Handler{userOnly, adminOnly}, blogHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/blog", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, blogHandler.HandleDelete)

	return nil
}

// registerPackageRoutes wires subscription packages.
func (r *Router) registerPackageRoutes(router fiber.Router) error {
	packageHandler, err := handler.NewPackageHandler()
	if err != nil {
		return fmt.Errorf("failed to create package handler: %v", err)
	}

	userOnly := middleware.Authenticated(middleware.NamespaceUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.Get("/package/", packageHandler.HandleListAll)

	registerRouteWithMiddleware(router, "/package", "POST", "/", []fiber.Handler{userOnly, adminOnly}, packageHandler.HandleCreate)
	registerRouteWithMiddleware(router, "/package", "POST", "/update", []fiber.Handler{userOnly, adminOnly}, packageHandler.HandleUpdate)
	registerRouteWithMiddleware(router, "/package", "DELETE", "/:id", []fiber.Handler{userOnly, adminOnly}, packageHandler.HandleDelete)

	return nil
}

// SetupRoutes registers every route of the application.
func SetupRoutes(app *fiber.App) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	router := NewRouter(app)

	registrations := []struct {
		name     string
		register func(fiber.Router) error
	}{
		{"auth", router.registerAuthRoutes},
		{"user", router.registerUserRoutes},
		{"vendor", router.registerVendorRoutes},
		{"business", router.registerBusinessRoutes},
		{"location", router.registerLocationRoutes},
		{"post", router.registerPostRoutes},
		{"rating", router.registerRatingRoutes},
		{"enquiry", router.registerEnquiryRoutes},
		{"call-lead", router.registerCallLeadRoutes},
		{"category", router.registerCategoryRoutes},
		{"city", router.registerCityRoutes},
		{"banner", router.registerBannerRoutes},
		{"blog", router.registerBlogRoutes},
		{"package", router.registerPackageRoutes},
	}

	for _, entry := range registrations {
		if err := entry.register(v1); err != nil {
			return fmt.Errorf("failed to register %s routes: %v", entry.name, err)
		}
	}

	return nil
}
