package acl

import (
	"context"
	"fmt"
)

// Name is the key this client registers under in the health registry.
func (c *IdentityClient) Name() string {
	return "identity-api"
}

// HealthCheck reports identity service availability from the breaker state
// alone. Readiness of this service is not tied to it beyond reporting.
func (c *IdentityClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.Name())
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", c.Name())
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", c.Name(), state)
	}
}
