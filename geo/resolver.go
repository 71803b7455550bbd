package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/codeXAI06/ReliefLink/schema"
)

var (
	ErrNoAddressFound         = fmt.Errorf("no address found for location")
	ErrResolverNotInitialized = fmt.Errorf("address resolver is not initialized")
)

// AddressResolver turns coordinates into a human-readable address for
// requests submitted without one. Resolution failures are degraded
// behavior; callers keep the empty address and move on.
type AddressResolver interface {
	ResolveAddress(schema.Location) (string, error)
}

var defaultResolver AddressResolver

func SetResolver(r AddressResolver) {
	defaultResolver = r
}

// ResolveAddress resolves with the process-wide resolver. Returns
// ErrResolverNotInitialized when no resolver was configured, which
// callers treat the same as a resolution miss.
func ResolveAddress(loc schema.Location) (string, error) {
	if defaultResolver == nil {
		return "", ErrResolverNotInitialized
	}
	return defaultResolver.ResolveAddress(loc)
}

type GeocodingAddressResolver struct {
	client *maps.Client
}

func NewGeocodingAddressResolver(client *maps.Client) *GeocodingAddressResolver {
	return &GeocodingAddressResolver{
		client: client,
	}
}

func (g *GeocodingAddressResolver) ResolveAddress(loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoAddressFound
	}

	return geos[0].FormattedAddress, nil
}
