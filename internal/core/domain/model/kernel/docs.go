// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - UUID: identifier of deliveries and couriers
//   - Location: a latitude/longitude pair in WGS84 degrees
//   - Digest: content digests used as cache keys for geocodes and routes
//
// Values are immutable and safe for concurrent use. Zero values are invalid
// and are rejected by Validate.
package kernel
