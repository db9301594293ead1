package handlers

import (
	"crypto/subtle"
	"net/http"

	"ecomm-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// CloseDayTokenHeader carries the shared secret for the close-day gate.
const CloseDayTokenHeader = "X-Close-Day-Token"

// OpsHandler exposes operator endpoints.
type OpsHandler struct {
	service *payment.Service
	token   string
}

// NewOpsHandler builds the handler. An empty token leaves the close-day
// endpoint open; deployments are expected to set one or gate the path at
// the ingress.
func NewOpsHandler(s *payment.Service, token string) OpsHandler {
	return OpsHandler{service: s, token: token}
}

// CloseDay triggers the processor's business-day close. Scheduled once
// per 24-hour trading cycle.
func (h *OpsHandler) CloseDay(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid close-day token"})
		return
	}

	report, err := h.service.CloseBusinessDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "close business day failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report.Fields})
}

func (h *OpsHandler) authorized(c *gin.Context) bool {
	if h.token == "" {
		return true
	}
	given := c.GetHeader(CloseDayTokenHeader)
	return subtle.ConstantTimeCompare([]byte(given), []byte(h.token)) == 1
}
