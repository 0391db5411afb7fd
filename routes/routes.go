package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/auth"
	"github.com/gourmet-express/api/handlers"
	"github.com/gourmet-express/api/middleware"
	"github.com/gourmet-express/api/service"
	"github.com/gourmet-express/api/store"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Users    store.IdentityStore
	Catalog  store.CatalogStore
	Subs     store.SubscriptionStore
	Tokens   *auth.TokenService
	Orders   *service.OrderService
	Payments *service.PaymentService
}

func SetupRoutes(r *gin.Engine, d Deps) {
	authH := &handlers.AuthHandler{Users: d.Users, Tokens: d.Tokens}
	profileH := &handlers.ProfileHandler{Users: d.Users}
	catalogH := &handlers.CatalogHandler{Catalog: d.Catalog}
	orderH := &handlers.OrderHandler{Orders: d.Orders}
	paymentH := &handlers.PaymentHandler{Payments: d.Payments}
	notifyH := &handlers.NotificationHandler{Subs: d.Subs}

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)

	r.GET("/restaurants", catalogH.ListRestaurants)
	r.GET("/restaurants/:id", catalogH.GetRestaurant)
	r.GET("/menus/restaurant/:id", catalogH.ListMenuItems)
	r.GET("/menus/:id", catalogH.GetMenuItem)
	r.GET("/tracking/stages", catalogH.TrackingStages)

	// ── Bearer-protected routes ────────────────────────────────────
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(d.Tokens, d.Users))
	{
		protected.GET("/auth/me", authH.Me)
		protected.GET("/profiles/me", profileH.GetProfile)
		protected.PUT("/profiles/me", profileH.UpdateProfile)

		protected.POST("/orders", orderH.PlaceOrder)
		protected.GET("/orders", orderH.ListOrders)
		protected.GET("/orders/:id", orderH.GetOrder)
		protected.GET("/orders/:id/status", orderH.GetOrderStatus)
		protected.GET("/orders/:id/track", orderH.TrackOrder)

		protected.POST("/payments/initiate", paymentH.Initiate)
		protected.POST("/payments/verify", paymentH.Verify)

		protected.POST("/notifications/subscribe", notifyH.Subscribe)
		protected.POST("/notifications/send", notifyH.Send)
	}
}
