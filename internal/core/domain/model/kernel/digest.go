package kernel

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Digest is a content hash used to decide whether a cached value still
// matches its source. Two equal inputs always produce the same digest.
type Digest string

// AddressDigest hashes the trimmed address text.
func AddressDigest(address string) Digest {
	return digestOf(strings.TrimSpace(address))
}

// RouteDigest hashes the four coordinates of a pickup/dropoff pair.
func RouteDigest(pickup, dropoff Location) Digest {
	var b strings.Builder
	b.Grow(64)
	b.WriteString(formatCoordinate(pickup.Lat()))
	b.WriteByte(',')
	b.WriteString(formatCoordinate(pickup.Lng()))
	b.WriteByte('|')
	b.WriteString(formatCoordinate(dropoff.Lat()))
	b.WriteByte(',')
	b.WriteString(formatCoordinate(dropoff.Lng()))
	return digestOf(b.String())
}

func (d Digest) String() string {
	return string(d)
}

func (d Digest) IsEmpty() bool {
	return d == ""
}

func digestOf(s string) Digest {
	return Digest(strconv.FormatUint(xxhash.Sum64String(s), 16))
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
