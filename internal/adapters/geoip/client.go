package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nazaaralive/internal/domain"
)

type geoHTTPResolver struct {
	client  *http.Client
	baseURL string
}

// NewHTTPResolver returns a RegionResolver that calls an ip-api compatible
// lookup endpoint. baseURL defaults to the public ip-api service when empty.
func NewHTTPResolver(client *http.Client, baseURL string) domain.RegionResolver {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = "http://ip-api.com/json"
	}
	return &geoHTTPResolver{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type lookupResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
}

func (r *geoHTTPResolver) Resolve(ctx context.Context, ip string) (string, error) {
	url := fmt.Sprintf("%s/%s?fields=status,countryCode", r.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch geo lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo api returned status: %d", resp.StatusCode)
	}

	var data lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode geo response: %w", err)
	}
	if data.Status != "success" || data.CountryCode == "" {
		return "", fmt.Errorf("geo lookup failed for %s", ip)
	}
	return strings.ToLower(data.CountryCode), nil
}
