package http

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
)

// Handler is any command or query handler returning a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ExecHandler is a command handler without a result.
type ExecHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f HandlerFunc[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// ExecHandlerFunc adapts a function to ExecHandler.
type ExecHandlerFunc[In any] func(ctx context.Context, in In) error

func (f ExecHandlerFunc[In]) Handle(ctx context.Context, in In) error {
	return f(ctx, in)
}

// Handlers groups the application handlers served over HTTP.
type Handlers struct {
	CreateDelivery  Handler[commands.CreateDeliveryCommand, *delivery.Delivery]
	UpdateAddresses Handler[commands.UpdateAddressesCommand, *delivery.Delivery]
	AssignCourier   Handler[commands.AssignCourierCommand, *delivery.Delivery]
	AdvanceStatus   Handler[commands.AdvanceStatusCommand, *delivery.Delivery]
	SubmitProof     Handler[commands.SubmitProofCommand, *delivery.Delivery]
	ReportFailure   Handler[commands.ReportFailureCommand, *delivery.Delivery]
	CancelDelivery  Handler[commands.CancelDeliveryCommand, *delivery.Delivery]
	DeleteDelivery  ExecHandler[commands.DeleteDeliveryCommand]
	SubmitFeedback  Handler[commands.SubmitFeedbackCommand, delivery.Feedback]
	CreateCourier   ExecHandler[commands.CreateCourierCommand]
	PushLocation    Handler[commands.PushLocationCommand, courier.Location]

	GetTracking         Handler[queries.GetTrackingQuery, queries.GetTrackingQueryResponse]
	GetTimeline         Handler[queries.GetTimelineQuery, []queries.GetTimelineQueryResponse]
	GetDriverLocation   Handler[queries.GetDriverLocationQuery, queries.DriverLocationView]
	GetDriverLocations  Handler[queries.GetDriverLocationsQuery, []queries.GetDriverLocationsQueryResponse]
	GetActiveDeliveries Handler[queries.GetActiveDeliveriesQuery, []queries.GetActiveDeliveriesQueryResponse]
	GetProof            Handler[queries.GetDeliveryRecordQuery, queries.GetProofQueryResponse]
	GetFailure          Handler[queries.GetDeliveryRecordQuery, queries.GetFailureQueryResponse]
}
