package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/gastrip/internal/models"
	"github.com/mmynk/gastrip/internal/session"
	"github.com/mmynk/gastrip/internal/share"
	pb "github.com/mmynk/gastrip/pkg/proto"
	"github.com/mmynk/gastrip/pkg/proto/protoconnect"
)

// TripService implements the Connect TripService over a single session.
type TripService struct {
	protoconnect.UnimplementedTripServiceHandler
	session *session.Session
}

// NewTripService creates a new TripService over the given session.
func NewTripService(s *session.Session) *TripService {
	return &TripService{session: s}
}

// GetTrip returns the current session state.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[pb.GetTripRequest]) (*connect.Response[pb.GetTripResponse], error) {
	return connect.NewResponse(&pb.GetTripResponse{State: s.state()}), nil
}

// UpdateField replaces one trip input with the parsed raw value.
func (s *TripService) UpdateField(ctx context.Context, req *connect.Request[pb.UpdateFieldRequest]) (*connect.Response[pb.UpdateFieldResponse], error) {
	field, err := models.ParseField(req.Msg.Field)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	in := s.session.Update(ctx, field, req.Msg.Value)
	slog.Debug("Field updated",
		"field", field,
		"distance", in.Distance,
		"consumption", in.Consumption,
		"price", in.Price,
	)
	return connect.NewResponse(&pb.UpdateFieldResponse{State: s.state()}), nil
}

// ResetTrip zeroes the trip and drops held insights.
func (s *TripService) ResetTrip(ctx context.Context, req *connect.Request[pb.ResetTripRequest]) (*connect.Response[pb.ResetTripResponse], error) {
	s.session.Reset(ctx)
	return connect.NewResponse(&pb.ResetTripResponse{State: s.state()}), nil
}

// SetPeople sets the party size used for the split.
func (s *TripService) SetPeople(ctx context.Context, req *connect.Request[pb.SetPeopleRequest]) (*connect.Response[pb.SetPeopleResponse], error) {
	if err := s.session.SetPeople(int(req.Msg.NumPeople)); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.SetPeopleResponse{State: s.state()}), nil
}

// RequestHelper asks the assistant for a missing input and stores it.
func (s *TripService) RequestHelper(ctx context.Context, req *connect.Request[pb.RequestHelperRequest]) (*connect.Response[pb.RequestHelperResponse], error) {
	q, err := queryFromProto(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	value, err := s.session.RunHelper(ctx, q)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.RequestHelperResponse{
		Value: value,
		State: s.state(),
	}), nil
}

// GenerateInsights asks the assistant for fuel-saving tips.
func (s *TripService) GenerateInsights(ctx context.Context, req *connect.Request[pb.GenerateInsightsRequest]) (*connect.Response[pb.GenerateInsightsResponse], error) {
	insights, err := s.session.GenerateInsights(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GenerateInsightsResponse{Insights: insightsToProto(insights)}), nil
}

// ShareSummary renders the export text for the current trip and party.
func (s *TripService) ShareSummary(ctx context.Context, req *connect.Request[pb.ShareSummaryRequest]) (*connect.Response[pb.ShareSummaryResponse], error) {
	text, err := s.session.ShareText()
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ShareSummaryResponse{Title: share.Title, Text: text}), nil
}

// SetTheme sets or toggles the theme.
func (s *TripService) SetTheme(ctx context.Context, req *connect.Request[pb.SetThemeRequest]) (*connect.Response[pb.SetThemeResponse], error) {
	if req.Msg.Toggle {
		theme := s.session.ToggleTheme(ctx)
		return connect.NewResponse(&pb.SetThemeResponse{Theme: string(theme)}), nil
	}

	theme, err := models.ParseTheme(req.Msg.Theme)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	s.session.SetTheme(ctx, theme)
	return connect.NewResponse(&pb.SetThemeResponse{Theme: string(theme)}), nil
}

func (s *TripService) state() *pb.TripState {
	return stateToProto(s.session.Snapshot())
}

// toConnectError maps session errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, session.ErrIncompleteQuery), errors.Is(err, session.ErrMinPeople):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, session.ErrHelperBusy), errors.Is(err, session.ErrInsightsBusy):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, session.ErrValueUnavailable):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrEmptyTrip):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
