package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"ecomm-gateway/internal/controller/apperror"
	"ecomm-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the transaction lifecycle over HTTP.
type PaymentHandler struct {
	service          *payment.Service
	clientHandlerURL string
	displayTitle     string
}

func NewPaymentHandler(s *payment.Service, clientHandlerURL, displayTitle string) PaymentHandler {
	return PaymentHandler{
		service:          s,
		clientHandlerURL: clientHandlerURL,
		displayTitle:     displayTitle,
	}
}

// Initiate starts a payment session. The checkout page calls this when
// the customer clicks pay; the response either carries the redirect to
// the hosted payment page or a generic failure payload.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": "failure", "message": "Missing order_id"})
		return
	}

	res, err := h.service.Initiate(c.Request.Context(), orderID, c.ClientIP())
	if err != nil {
		c.JSON(initiateStatus(err), gin.H{
			"result":  "failure",
			"message": "We could not start your payment. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   "success",
		"message":  "Redirecting to the payment page...",
		"redirect": res.RedirectURL,
	})
}

// initiateStatus maps lifecycle errors to status codes without leaking
// detail into the response body.
func initiateStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrAlreadyInitiated):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrOrderNotStartable),
		errors.Is(err, apperror.ErrUnknownCurrency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrConfigurationMissing):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// redirectFormTmpl auto-submits the customer's browser to the bank's
// hosted payment page, with a noscript fallback button.
var redirectFormTmpl = template.Must(template.New("redirect").Parse(`<html>
	<head>
		<title>{{.Title}}</title>
		<script type="text/javascript">
			function redirect() {
				document.returnform.submit();
			}
		</script>
	</head>
	<body onload="javascript:redirect()">
		<form name="returnform" action="{{.Action}}" method="POST">
			<input type="hidden" name="trans_id" value="{{.TransID}}">
			<noscript>
				<center>
					Please click the submit button below.<br>
					<input type="submit" name="submit" value="Submit">
				</center>
			</noscript>
		</form>
	</body>
</html>
`))

// RedirectToGateway renders the auto-submitting form posting trans_id to
// the bank's ClientHandler. A browser shim, not business logic.
func (h *PaymentHandler) RedirectToGateway(c *gin.Context) {
	transID := c.Query("transaction_id")
	if transID == "" {
		c.String(http.StatusBadRequest, "Missing transaction_id")
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = redirectFormTmpl.Execute(c.Writer, gin.H{
		"Title":   h.displayTitle,
		"Action":  h.clientHandlerURL,
		"TransID": transID,
	})
}

// ReturnOK lands the customer returning from the bank's hosted page. The
// outcome is always a redirect; verification detail stays server-side.
func (h *PaymentHandler) ReturnOK(c *gin.Context) {
	transID := c.PostForm("trans_id")
	if transID == "" {
		transID = c.Query("trans_id")
	}

	outcome, _ := h.service.HandleReturn(c.Request.Context(), transID, c.ClientIP())

	c.Redirect(http.StatusFound, outcome.RedirectURL)
}

// ReturnFail is the bank's technical-failure landing page.
func (h *PaymentHandler) ReturnFail(c *gin.Context) {
	msg := h.service.HandleReturnFailure(c.Request.Context())
	c.String(http.StatusBadGateway, msg)
}
