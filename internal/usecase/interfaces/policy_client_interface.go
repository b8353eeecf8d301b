package interfaces

import "context"

// IPolicyClient is the narrow boundary to the policy-service. Submitting a
// claim only needs to know whether the referenced policy exists.

type IPolicyClient interface {
	PolicyExists(ctx context.Context, policyNumber string) (bool, error)
}
