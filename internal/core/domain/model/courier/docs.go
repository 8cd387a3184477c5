// Package courier models the people who carry deliveries: their profile and
// the single most recent location sample each of them reports.
package courier
