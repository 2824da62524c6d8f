package api

import (
	"net/http"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	orderService service.OrderService,
	membershipService service.MembershipService,
	clientService service.ClientService,
	catalogService service.CatalogService,
	financeService service.FinanceService,
	scheduleService service.ScheduleService,
	mediaService service.MediaService,
) {
	authHandler := NewAuthHandler(authService)
	publicHandler := NewPublicHandler(orderService, membershipService, catalogService)
	orderHandler := NewOrderHandler(orderService)
	clientHandler := NewClientHandler(clientService)
	catalogHandler := NewCatalogHandler(catalogService, mediaService)
	financeHandler := NewFinanceHandler(financeService)
	scheduleHandler := NewScheduleHandler(scheduleService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// Public customer-facing endpoints. No authentication.
	{
		apiV1.GET("/pricing", publicHandler.ListPricingPlans)
		apiV1.GET("/gallery", publicHandler.ListGallery)
		apiV1.GET("/achievements", publicHandler.ListAchievements)
		apiV1.POST("/orders", publicHandler.SubmitOrder)
		apiV1.POST("/promo/validate", publicHandler.ValidatePromoCode)
		apiV1.GET("/membership/:code", publicHandler.LookupMembership)

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	// Back-office endpoints. Everything under /admin requires a valid token
	// with the admin role.
	admin := apiV1.Group("/admin")
	admin.Use(AuthMiddleware(jwtSecret), RoleMiddleware(domain.RoleAdmin))
	{
		admin.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := c.Get(ContextUserRoleKey)
			c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
		})

		admin.GET("/orders", orderHandler.ListPending)
		admin.POST("/orders/:orderId/approve", orderHandler.Approve)
		admin.DELETE("/orders/:orderId", orderHandler.Reject)

		clientGroup := admin.Group("/clients")
		{
			clientGroup.GET("", clientHandler.List)
			clientGroup.GET("/:clientId", clientHandler.Get)
			clientGroup.DELETE("/:clientId", clientHandler.Delete)
			clientGroup.POST("/:clientId/pause", clientHandler.Pause)
			clientGroup.POST("/:clientId/resume", clientHandler.Resume)
			clientGroup.POST("/:clientId/extend", clientHandler.Extend)
			clientGroup.PUT("/:clientId/goal", clientHandler.UpdateGoal)
			clientGroup.PUT("/:clientId/resources", clientHandler.UpdateResources)
			clientGroup.POST("/:clientId/progress-logs", clientHandler.AddProgressLog)
			clientGroup.GET("/:clientId/progress-logs", clientHandler.ListProgressLogs)
		}

		pricingGroup := admin.Group("/pricing")
		{
			pricingGroup.POST("", catalogHandler.CreatePlan)
			pricingGroup.PUT("/:planId", catalogHandler.UpdatePlan)
			pricingGroup.DELETE("/:planId", catalogHandler.DeletePlan)
		}

		promoGroup := admin.Group("/promo-codes")
		{
			promoGroup.GET("", catalogHandler.ListPromoCodes)
			promoGroup.POST("", catalogHandler.CreatePromoCode)
			promoGroup.DELETE("/:promoId", catalogHandler.DeletePromoCode)
		}

		galleryGroup := admin.Group("/gallery")
		{
			galleryGroup.POST("", catalogHandler.CreateGalleryItem)
			galleryGroup.PUT("/:itemId", catalogHandler.UpdateGalleryItem)
			galleryGroup.DELETE("/:itemId", catalogHandler.DeleteGalleryItem)
		}

		achievementGroup := admin.Group("/achievements")
		{
			achievementGroup.POST("", catalogHandler.CreateAchievement)
			achievementGroup.PUT("/:itemId", catalogHandler.UpdateAchievement)
			achievementGroup.DELETE("/:itemId", catalogHandler.DeleteAchievement)
		}

		admin.POST("/media/upload-url", catalogHandler.GenerateUploadURL)

		financeGroup := admin.Group("/finance")
		{
			financeGroup.GET("/ledger", financeHandler.ListLedger)
			financeGroup.POST("/expenses", financeHandler.AddExpense)
			financeGroup.DELETE("/ledger/:entryType/:entryId", financeHandler.DeleteEntry)
			financeGroup.GET("/summary", financeHandler.Summary)
		}

		admin.GET("/schedule", scheduleHandler.Get)
		admin.PUT("/schedule", scheduleHandler.Save)
	}
}
