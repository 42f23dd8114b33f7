package transport

import (
	"context"
	"fmt"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"golang.org/x/time/rate"
)

// Pace wraps next with a token-bucket limiter. rps is the steady-state
// request rate; burst is the maximum burst size. Send blocks until a token
// is available or ctx is done. It is opt-in: the SDK itself never paces.
func Pace(next linkedin.Transport, rps float64, burst int) linkedin.Transport {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return linkedin.TransportFunc(func(ctx context.Context, opts *linkedin.RequestOptions) (*linkedin.Response, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
		return next.Send(ctx, opts)
	})
}
