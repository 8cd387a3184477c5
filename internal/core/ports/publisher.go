package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
)

// EventPublisher announces committed status changes. Delivery is best effort:
// implementations log failures instead of returning them.
type EventPublisher interface {
	Publish(ctx context.Context, changes ...delivery.StatusChanged)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}
