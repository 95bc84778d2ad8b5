package routes

import (
	"github.com/labstack/echo/v4"

	"estatecrm/handlers"
	"estatecrm/middleware"
	"estatecrm/models"
	"estatecrm/repositories"
	"estatecrm/services"
)

func RegisterRoutes(e *echo.Echo) {
	propertyRepo := repositories.NewPropertyRepository()
	locationRepo := repositories.NewLocationRepository()
	developerRepo := repositories.NewDeveloperRepository()
	projectRepo := repositories.NewProjectRepository()
	leadRepo := repositories.NewLeadRepository()
	customerRepo := repositories.NewCustomerRepository()
	userRepo := repositories.NewUserRepository()
	mirrorRepo := repositories.NewMirrorRepository()
	favoriteRepo := repositories.NewFavoriteRepository()

	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(propertyRepo, locationRepo))
	locationHandler := handlers.NewLocationHandler(services.NewLocationService(locationRepo, propertyRepo))
	developerHandler := handlers.NewDeveloperHandler(services.NewDeveloperService(developerRepo))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(projectRepo))
	leadHandler := handlers.NewLeadHandler(services.NewLeadService(leadRepo, customerRepo))
	customerHandler := handlers.NewCustomerHandler(services.NewCustomerService(customerRepo))
	authHandler := handlers.NewAuthHandler(userRepo)
	mirrorHandler := handlers.NewMirrorHandler(mirrorRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, propertyRepo)

	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, middleware.JWTAuth())

	properties := api.Group("/properties")
	properties.GET("", propertyHandler.List)
	properties.GET("/featured", propertyHandler.Featured)
	properties.GET("/search", propertyHandler.Search)
	properties.POST("/mirror", mirrorHandler.Create, middleware.JWTAuth())
	properties.GET("/mirror", mirrorHandler.List)
	properties.GET("/mirror/:id", mirrorHandler.Get)
	properties.GET("/:id", propertyHandler.Get)
	properties.POST("", propertyHandler.Create, middleware.JWTAuth())
	properties.PUT("/:id", propertyHandler.Update, middleware.JWTAuth())
	properties.DELETE("/:id", propertyHandler.Delete, middleware.JWTAuth())

	locations := api.Group("/locations")
	locations.GET("", locationHandler.List)
	locations.GET("/search", locationHandler.Search)
	locations.GET("/:id", locationHandler.Get)
	locations.POST("", locationHandler.Create, middleware.JWTAuth())
	locations.PUT("/:id", locationHandler.Update, middleware.JWTAuth())
	locations.DELETE("/:id", locationHandler.Delete, middleware.JWTAuth())

	developers := api.Group("/developers", middleware.JWTAuth())
	developers.GET("", developerHandler.List)
	developers.GET("/:id", developerHandler.Get)
	developers.POST("", developerHandler.Create)
	developers.PUT("/:id", developerHandler.Update)
	developers.DELETE("/:id", developerHandler.Delete)

	projects := api.Group("/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, middleware.JWTAuth())
	projects.POST("/bulk", projectHandler.BulkCreate, middleware.JWTAuth())
	projects.PUT("/:id", projectHandler.Update, middleware.JWTAuth())
	projects.PATCH("/:id", projectHandler.Update, middleware.JWTAuth())
	projects.DELETE("/:id", projectHandler.Delete, middleware.JWTAuth())

	leads := api.Group("/leads", middleware.JWTAuth(), middleware.RequireRoles(models.RoleAdmin, models.RoleSalesAgent))
	leads.GET("", leadHandler.List)
	leads.GET("/:id", leadHandler.Get)
	leads.POST("", leadHandler.Create)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)
	leads.PATCH("/:id/status", leadHandler.UpdateStatus)
	leads.PUT("/:id/assign", leadHandler.Assign, middleware.RequireRoles(models.RoleAdmin))
	leads.POST("/:id/convert", leadHandler.Convert, middleware.RequireRoles(models.RoleAdmin))

	customers := api.Group("/customers", middleware.JWTAuth(), middleware.RequireRoles(models.RoleAdmin, models.RoleSalesAgent))
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PATCH("/:id/status", customerHandler.UpdateStatus)

	favorites := api.Group("/favorites", middleware.JWTAuth())
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Create)
	favorites.DELETE("/:propertyId", favoriteHandler.Delete)
}
