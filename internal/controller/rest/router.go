package rest

import (
	"MercadoPagoBridge/internal/controller/rest/handlers"
	"MercadoPagoBridge/internal/domain/processor"
	"MercadoPagoBridge/pkg/health"
	"MercadoPagoBridge/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	notification handlers.NotificationHandler
	checkout     handlers.CheckoutHandler
	admin        handlers.AdminHandler
	health       *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST(processor.HookPath, r.notification.Webhook)

	store := engine.Group("/store/carts/:cart_id")
	store.POST("/payment-sessions", r.checkout.InitiateSession)
	store.POST("/payment-sessions/refresh", r.checkout.RefreshSession)
	store.GET("/payment-session", r.checkout.GetSession)
	store.GET("/order", r.checkout.GetOrder)

	admin := engine.Group("/admin/carts/:cart_id")
	admin.GET("/provider-payments", r.admin.ProviderPayments)
	admin.GET("/notifications", r.admin.Notifications)
}

func NewRouter(
	notification handlers.NotificationHandler,
	checkout handlers.CheckoutHandler,
	admin handlers.AdminHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		notification: notification,
		checkout:     checkout,
		admin:        admin,
		health:       healthRegistry,
	}
}
