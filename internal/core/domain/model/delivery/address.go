package delivery

import (
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Address is a free-text address with its cached geocode. The geocode is only
// trusted while digest matches the digest of the current text.
type Address struct {
	text     string
	location *kernel.Location
	digest   kernel.Digest
}

// NewAddress creates an address that has never been geocoded.
func NewAddress(text string) (Address, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	return Address{text: trimmed}, nil
}

// RestoreAddress rebuilds an address from storage. location and digest may be
// empty when the address was never geocoded.
func RestoreAddress(text string, location *kernel.Location, digest kernel.Digest) Address {
	return Address{text: text, location: location, digest: digest}
}

func (a Address) Text() string {
	return a.text
}

// Location returns the stored geocode, whether or not it is still current.
func (a Address) Location() (kernel.Location, bool) {
	if a.location == nil {
		return kernel.Location{}, false
	}
	return *a.location, true
}

func (a Address) Digest() kernel.Digest {
	return a.digest
}

// NeedsGeocode reports a cache miss: no coordinates, or coordinates computed
// for a different text.
func (a Address) NeedsGeocode() bool {
	return a.location == nil || a.digest != kernel.AddressDigest(a.text)
}

// WithGeocode stores loc as the geocode of the current text.
func (a Address) WithGeocode(loc kernel.Location) Address {
	return Address{text: a.text, location: &loc, digest: kernel.AddressDigest(a.text)}
}

// WithText replaces the text and keeps the previous geocode, which becomes
// stale through the digest mismatch.
func (a Address) WithText(text string) (Address, error) {
	next, err := NewAddress(text)
	if err != nil {
		return Address{}, err
	}
	next.location = a.location
	next.digest = a.digest
	return next, nil
}
