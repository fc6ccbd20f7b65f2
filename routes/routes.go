package routes

import (
	"log"
	"net/http"

	"bakery-shop/controllers"
	"bakery-shop/middleware"
	"bakery-shop/models"
	"bakery-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Catalog  *services.CatalogService
	Feedback *services.FeedbackService
	Auth     *services.AuthService
}

func SetupRoutes(router *gin.Engine, svc Services) {
	catalogCtrl := controllers.NewCatalogController(svc.Catalog)
	contactCtrl := controllers.NewContactController(svc.Feedback)
	adminCtrl := controllers.NewAdminController(svc.Auth, svc.Feedback)

	router.Use(middleware.RequestID(), middleware.ErrorResponder())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/featured", catalogCtrl.GetFeatured)
	router.GET("/products", middleware.ValidateProductQuery(), catalogCtrl.GetProducts)
	router.GET("/products/:name", catalogCtrl.GetProduct)
	router.GET("/flavors/:name", catalogCtrl.GetFlavors)
	router.GET("/macaron-flavors", catalogCtrl.GetMacaronFlavors)
	router.GET("/box-decorations", catalogCtrl.GetBoxDecorations)
	router.GET("/faq", catalogCtrl.GetFAQ)
	router.POST("/custom-description", middleware.BindBody[models.CustomDescriptionRequest](), catalogCtrl.PostCustomDescription)
	router.POST("/contact-us", middleware.BindBody[models.ContactRequest](), contactCtrl.PostContact)

	if !svc.Auth.Enabled() {
		log.Println("[admin] JWT_SECRET or ADMIN_PASSWORD_HASH not set, admin endpoints reject every request")
	}
	router.POST("/admin/login", middleware.BindBody[models.AdminLoginRequest](), adminCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(svc.Auth))
	{
		admin.GET("/feedback", adminCtrl.ListFeedback)
		admin.GET("/feedback/export", adminCtrl.ExportFeedback)
	}
}
