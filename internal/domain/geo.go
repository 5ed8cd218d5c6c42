package domain

import "context"

// RegionResolver resolves a visitor IP address to a region code (ISO 3166-1
// alpha-2, lowercased). Implementations call an external geo-IP API.
type RegionResolver interface {
	Resolve(ctx context.Context, ip string) (string, error)
}
