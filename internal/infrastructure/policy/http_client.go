package policy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trustify_claims/internal/usecase/interfaces"
)

var ErrMissingPolicyServiceURL = errors.New("missing POLICY_SERVICE_URL")

const requestTimeout = 5 * time.Second

// HTTPClient checks policy existence against the policy-service. The claims
// service only needs a yes/no answer at submission time, so the surface is a
// single GET.

type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPolicyClient = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[policy][client] missing POLICY_SERVICE_URL")
		return nil, ErrMissingPolicyServiceURL
	}

	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

func (c *HTTPClient) PolicyExists(ctx context.Context, policyNumber string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/policies/%s", c.baseURL, url.PathEscape(policyNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("policy-service returned status %d", resp.StatusCode)
	}
}
