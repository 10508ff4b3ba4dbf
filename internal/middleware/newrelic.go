package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"ridefare/internal/service"
)

// FareErrorKey is the gin context key handlers use to publish a rejected
// quote's error.
const FareErrorKey = "fareError"

// FareErrorAttributes tags the active New Relic transaction with the kind
// of fare error a handler reported. It is a no-op without a transaction.
//
// nrgin keeps the transaction on the gin context only, so it is also copied
// onto the request context for downstream calls such as the Redis hook.
func FareErrorAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		if txn := nrgin.Transaction(c); txn != nil {
			c.Request = newrelic.RequestWithTransactionContext(c.Request, txn)
		}

		c.Next()

		value, ok := c.Get(FareErrorKey)
		if !ok {
			return
		}
		err, ok := value.(error)
		if !ok {
			return
		}

		txn := newrelic.FromContext(c.Request.Context())
		if txn == nil {
			return
		}
		txn.AddAttribute("fare.error_kind", string(service.KindOf(err)))
		txn.AddAttribute("fare.error_message", err.Error())
	}
}
