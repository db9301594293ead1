// Package http wires the gateway's endpoints. The routing table is built
// once from configuration; there is no dynamic dispatch.
package http

import (
	"ecomm-gateway/internal/controller/http/handlers"
	"ecomm-gateway/pkg/health"
	"ecomm-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router holds the handlers and the configured callback slugs.
type Router struct {
	payment handlers.PaymentHandler
	ops     handlers.OpsHandler

	successSlug string
	failureSlug string

	healthRegistry *health.Registry
	version        string
}

func NewRouter(
	payment handlers.PaymentHandler,
	ops handlers.OpsHandler,
	successSlug, failureSlug string,
	healthRegistry *health.Registry,
	version string,
) *Router {
	return &Router{
		payment:        payment,
		ops:            ops,
		successSlug:    successSlug,
		failureSlug:    failureSlug,
		healthRegistry: healthRegistry,
		version:        version,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/payments/:order_id/initiate", r.payment.Initiate)
	engine.GET("/payments/redirect", r.payment.RedirectToGateway)

	// The bank posts the customer back to the configured slugs; some
	// ECOMM deployments send the return as GET instead.
	engine.POST("/callbacks/"+r.successSlug, r.payment.ReturnOK)
	engine.GET("/callbacks/"+r.successSlug, r.payment.ReturnOK)
	engine.POST("/callbacks/"+r.failureSlug, r.payment.ReturnFail)
	engine.GET("/callbacks/"+r.failureSlug, r.payment.ReturnFail)

	engine.POST("/ops/close-day", r.ops.CloseDay)

	engine.GET("/health/live", health.LivenessHandler(r.version))
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
