package interfaces

import (
	"context"

	"github.com/kingsmao/perp-ticker-list/pkg/schema"
)

// RESTClient defines REST capabilities needed to build the ticker list.
type RESTClient interface {
	// GetExchangeInfo fetches the instrument list of one market.
	// A non-2xx response is reported as *schema.StatusError.
	GetExchangeInfo(ctx context.Context) (schema.ExchangeInfo, error)
}
