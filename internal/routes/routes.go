package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/mybudget/internal/handlers"
	"github.com/valeriaulyamaeva/mybudget/internal/middleware"
)

// SetupRouter собирает все маршруты приложения. Три зоны доступа:
// /api/auth — вход и собственный профиль, /api/user — данные активного
// пользователя, /api/admin — административные операции.
func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.LoadSession(pool))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register(pool))
		auth.POST("/login", handlers.Login(pool))
		auth.POST("/logout", handlers.Logout(pool))

		me := auth.Group("", middleware.RequireAuth())
		{
			me.GET("/me", handlers.Me(pool))
			me.PUT("/me", handlers.UpdateMe(pool))
			me.POST("/change-password", handlers.ChangePassword(pool))
		}
	}

	user := r.Group("/api/user", middleware.RequireActiveUser(pool))
	{
		user.GET("/expenses", handlers.ListExpenses(pool))
		user.POST("/expenses", handlers.CreateExpense(pool))
		user.PUT("/expenses/:id", handlers.UpdateExpense(pool))
		user.DELETE("/expenses/:id", handlers.DeleteExpense(pool))

		user.GET("/income", handlers.ListIncome(pool))
		user.POST("/income", handlers.CreateIncome(pool))
		user.PUT("/income/:id", handlers.UpdateIncome(pool))
		user.DELETE("/income/:id", handlers.DeleteIncome(pool))

		user.GET("/budgets", handlers.ListBudgets(pool))
		user.POST("/budgets", handlers.CreateBudget(pool))
		user.PUT("/budgets/:id", handlers.UpdateBudget(pool))
		user.DELETE("/budgets/:id", handlers.DeleteBudget(pool))

		user.GET("/reports/spending-summary", handlers.SpendingSummary(pool))
		user.GET("/reports/budget-analysis", handlers.BudgetAnalysis(pool))

		user.GET("/education", handlers.ListEducation(pool))
		user.GET("/education/:id", handlers.GetEducation(pool))
		user.POST("/education/chatbot", handlers.Chatbot())

		user.GET("/notifications", handlers.ListMyNotifications(pool))
		user.POST("/notifications/:id/read", handlers.MarkNotificationRead(pool))
		user.POST("/notifications/read-all", handlers.MarkAllNotificationsRead(pool))

		user.GET("/profile", handlers.Me(pool))
		user.PUT("/profile", handlers.UpdateMe(pool))
		user.POST("/change-password", handlers.ChangePassword(pool))
	}

	admin := r.Group("/api/admin", middleware.RequireAdmin(pool))
	{
		admin.GET("/users", handlers.AdminListUsers(pool))
		admin.POST("/users", handlers.AdminCreateUser(pool))
		admin.GET("/users/:id", handlers.AdminGetUser(pool))
		admin.PUT("/users/:id", handlers.AdminUpdateUser(pool))
		admin.DELETE("/users/:id", handlers.AdminDeleteUser(pool))
		admin.PUT("/users/:id/status", handlers.AdminUpdateUserStatus(pool))
		admin.POST("/users/:id/reset-password", handlers.AdminResetPassword(pool))
		admin.GET("/users/:id/activity", handlers.AdminUserActivity(pool))

		admin.GET("/education", handlers.ListEducation(pool))
		admin.GET("/education/:id", handlers.GetEducation(pool))
		admin.POST("/education", handlers.CreateEducation(pool))
		admin.PUT("/education/:id", handlers.UpdateEducation(pool))
		admin.DELETE("/education/:id", handlers.DeleteEducation(pool))

		admin.GET("/notifications", handlers.AdminListNotifications(pool))
		admin.POST("/notifications", handlers.AdminCreateNotification(pool))
		admin.GET("/notifications/:id", handlers.AdminGetNotification(pool))
		admin.PUT("/notifications/:id", handlers.AdminUpdateNotification(pool))
		admin.DELETE("/notifications/:id", handlers.AdminDeleteNotification(pool))

		admin.GET("/stats", handlers.AdminStats(pool))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Маршрут не найден"})
	})

	return r
}
