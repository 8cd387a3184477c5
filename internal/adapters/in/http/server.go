package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	oapimiddleware "github.com/oapi-codegen/echo-middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	BasePath    = "/api/v1"
	ActorHeader = "X-Actor"
	DocsPath    = "/swagger/*"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application
// command and query handlers.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{handlers: handlers, logger: logger}
}

// Register mounts the API group behind the OpenAPI request validator, the
// swagger UI, health and metrics on e. metrics may be nil. Echo errors,
// including validator and parameter binding failures, are rendered as
// servers.Error bodies.
func (s *Server) Register(e *echo.Echo, metrics http.Handler) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi spec: %w", err)
	}

	e.HTTPErrorHandler = s.handleError

	api := e.Group(BasePath, oapimiddleware.OapiRequestValidator(swagger))
	servers.RegisterHandlers(api, s)

	registerDoc(swagger)
	e.GET(DocsPath, echoSwagger.WrapHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	return nil
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context, params servers.CreateDeliveryParams) error {
	var body servers.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDeliveryCommand(commands.CreateDeliveryInput{
		CustomerName:    body.CustomerName,
		CustomerContact: value(body.CustomerContact),
		PickupAddress:   body.PickupAddress,
		DropoffAddress:  body.DropoffAddress,
		PackageType:     value(body.PackageType),
		PackageWeight:   body.PackageWeight,
		PackageNotes:    value(body.PackageNotes),
		DeliveryDate:    value(body.DeliveryDate),
		Priority:        value(body.Priority),
		Actor:           value(params.XActor),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromAggregate(created))
}

// GetActiveDeliveries handles GET /api/v1/deliveries?courier_id=.
func (s *Server) GetActiveDeliveries(ctx echo.Context, params servers.GetActiveDeliveriesParams) error {
	var courierID *kernel.UUID
	if params.CourierId != nil {
		id, err := kernelID(*params.CourierId)
		if err != nil {
			return s.fail(ctx, err)
		}
		courierID = &id
	}

	rows, err := s.handlers.GetActiveDeliveries.Handle(ctx.Request().Context(),
		queries.NewGetActiveDeliveriesQuery(courierID))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ActiveDelivery, len(rows))
	for i, row := range rows {
		response[i] = servers.ActiveDelivery{
			Id:             row.ID.Bytes(),
			Reference:      row.Reference,
			Status:         row.Status,
			Priority:       row.Priority,
			CustomerName:   row.CustomerName,
			PickupAddress:  row.PickupAddress,
			DropoffAddress: row.DropoffAddress,
			CourierId:      apiIDPtr(row.CourierID),
			CreatedAt:      row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTracking handles GET /api/v1/deliveries/track?ref= with a reference code or id.
func (s *Server) GetTracking(ctx echo.Context, params servers.GetTrackingParams) error {
	query, err := queries.NewGetTrackingQuery(params.Ref)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTracking(view))
}

// UpdateAddresses handles PATCH /api/v1/deliveries/:id.
func (s *Server) UpdateAddresses(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AddressChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAddressesCommand(deliveryID, body.PickupAddress, body.DropoffAddress)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateAddresses.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(updated))
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) DeleteDelivery(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/deliveries/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context, id servers.ID, params servers.AssignCourierParams) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Assignment
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	courierID, err := kernelID(body.CourierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(deliveryID, courierID, value(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}

	assigned, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(assigned))
}

// AdvanceStatus handles POST /api/v1/deliveries/:id/status with pickup or in_transit.
func (s *Server) AdvanceStatus(ctx echo.Context, id servers.ID, params servers.AdvanceStatusParams) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusAction
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceStatusCommand(deliveryID, body.Action, value(body.Note), value(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}

	advanced, err := s.handlers.AdvanceStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(advanced))
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context, id servers.ID, params servers.CancelDeliveryParams) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, value(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled, err := s.handlers.CancelDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(cancelled))
}

// GetTimeline handles GET /api/v1/deliveries/:id/events.
func (s *Server) GetTimeline(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetTimelineQuery(deliveryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.handlers.GetTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TimelineEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.TimelineEntry{
			Id:         entry.ID,
			Label:      entry.Label,
			Status:     entry.Status,
			Note:       entry.Note,
			Actor:      entry.Actor,
			OccurredAt: entry.OccurredAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SubmitProof handles POST /api/v1/deliveries/:id/pod.
func (s *Server) SubmitProof(ctx echo.Context, id servers.ID, params servers.SubmitProofParams) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Proof
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitProofCommand(deliveryID, body.RecipientName, body.PhotoRef,
		value(body.SignatureRef), value(body.Note), value(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}

	delivered, err := s.handlers.SubmitProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(delivered))
}

// GetProof handles GET /api/v1/deliveries/:id/pod.
func (s *Server) GetProof(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryRecordQuery(deliveryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	proof, err := s.handlers.GetProof.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.ProofRecord{
		DeliveryId:    proof.DeliveryID.Bytes(),
		RecipientName: proof.RecipientName,
		PhotoRef:      proof.PhotoRef,
		SignatureRef:  optional(proof.SignatureRef),
		Note:          optional(proof.Note),
		SubmittedAt:   proof.SubmittedAt,
	})
}

// ReportFailure handles POST /api/v1/deliveries/:id/failure.
func (s *Server) ReportFailure(ctx echo.Context, id servers.ID, params servers.ReportFailureParams) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Failure
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportFailureCommand(deliveryID, body.Reason, value(body.Notes),
		value(body.PhotoRef), value(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}

	failed, err := s.handlers.ReportFailure.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromAggregate(failed))
}

// GetFailure handles GET /api/v1/deliveries/:id/failure.
func (s *Server) GetFailure(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDeliveryRecordQuery(deliveryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	failure, err := s.handlers.GetFailure.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.FailureRecord{
		DeliveryId: failure.DeliveryID.Bytes(),
		Reason:     failure.Reason,
		Notes:      optional(failure.Notes),
		PhotoRef:   optional(failure.PhotoRef),
		ReportedAt: failure.ReportedAt,
	})
}

// SubmitFeedback handles POST /api/v1/deliveries/:id/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context, id servers.ID) error {
	deliveryID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewFeedback
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitFeedbackCommand(deliveryID, body.CustomerRef, body.Rating, value(body.Comment))
	if err != nil {
		return s.fail(ctx, err)
	}

	feedback, err := s.handlers.SubmitFeedback.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.Feedback{
		DeliveryId:  feedback.DeliveryID().Bytes(),
		CustomerRef: feedback.CustomerRef(),
		Rating:      feedback.Rating(),
		Comment:     optional(feedback.Comment()),
		CreatedAt:   feedback.CreatedAt(),
	})
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body servers.NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.CourierCreated{Id: cmd.CourierID().Bytes()})
}

// PushLocation handles POST /api/v1/couriers/:id/location.
func (s *Server) PushLocation(ctx echo.Context, id servers.ID) error {
	courierID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.LocationPush
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var recordedAt time.Time
	if body.RecordedAt != nil {
		recordedAt = *body.RecordedAt
	}

	cmd, err := commands.NewPushLocationCommand(courierID, body.Lat, body.Lng, courier.Reading{
		Accuracy: body.Accuracy,
		Heading:  body.Heading,
		Speed:    body.Speed,
	}, recordedAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	sample, err := s.handlers.PushLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromLocation(sample))
}

// GetDriverLocation handles GET /api/v1/couriers/:id/location.
func (s *Server) GetDriverLocation(ctx echo.Context, id servers.ID) error {
	courierID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDriverLocationQuery(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetDriverLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDriverLocation(view))
}

// GetDriverLocations handles GET /api/v1/couriers/locations.
func (s *Server) GetDriverLocations(ctx echo.Context) error {
	rows, err := s.handlers.GetDriverLocations.Handle(ctx.Request().Context(), queries.NewGetDriverLocationsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.DriverLocation, len(rows))
	for i, row := range rows {
		response[i] = servers.DriverLocation{
			CourierId: row.CourierID.Bytes(),
			Name:      optional(row.Name),
			Lat:       row.Lat,
			Lng:       row.Lng,
			Accuracy:  row.Accuracy,
			Heading:   row.Heading,
			Speed:     row.Speed,
			UpdatedAt: row.UpdatedAt,
			Stale:     row.Stale,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err))
		message = "Internal server error"
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// handleError renders errors returned to echo, such as request validation
// and parameter binding failures.
func (s *Server) handleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = s.fail(ctx, err)
		return
	}

	message := fmt.Sprint(he.Message)
	if he.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err))
		message = "Internal server error"
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(he.Code)
		return
	}
	_ = ctx.JSON(he.Code, servers.Error{Code: he.Code, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrDeleteRejected):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}
