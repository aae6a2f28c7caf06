package service

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/gastrip/internal/assistant"
	"github.com/mmynk/gastrip/internal/middleware"
	"github.com/mmynk/gastrip/internal/session"
	"github.com/mmynk/gastrip/internal/storage/sqlite"
	pb "github.com/mmynk/gastrip/pkg/proto"
	"github.com/mmynk/gastrip/pkg/proto/protoconnect"
)

// setupTestServer creates a test server over a temp SQLite database and an
// assistant answering with the given generator.
func setupTestServer(t *testing.T, gen assistant.Generator, opts ...connect.ClientOption) (protoconnect.TripServiceClient, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	sess := session.New(context.Background(), store, assistant.New(gen))
	interceptors := connect.WithInterceptors(
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)
	path, handler := protoconnect.NewTripServiceHandler(NewTripService(sess), interceptors)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	client := protoconnect.NewTripServiceClient(http.DefaultClient, server.URL, opts...)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return client, cleanup
}

// cannedAnswer returns a generator that always answers text.
func cannedAnswer(text string) assistant.Generator {
	return assistant.GeneratorFunc(func(context.Context, assistant.Request) (string, error) {
		return text, nil
	})
}

func fillTrip(t *testing.T, client protoconnect.TripServiceClient) {
	t.Helper()
	ctx := context.Background()
	for _, req := range []*pb.UpdateFieldRequest{
		{Field: "distance", Value: "450"},
		{Field: "consumption", Value: "6,5"},
		{Field: "price", Value: "1.55"},
	} {
		if _, err := client.UpdateField(ctx, connect.NewRequest(req)); err != nil {
			t.Fatalf("UpdateField(%s) failed: %v", req.Field, err)
		}
	}
}

func TestGetTrip_Empty(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()

	resp, err := client.GetTrip(context.Background(), connect.NewRequest(&pb.GetTripRequest{}))
	if err != nil {
		t.Fatalf("GetTrip failed: %v", err)
	}
	if resp.Msg.State.Totals.TotalCost != 0 || resp.Msg.State.Totals.CostPerKm != 0 {
		t.Errorf("totals = %+v, want zero", resp.Msg.State.Totals)
	}
	if resp.Msg.State.Split.NumPeople != 1 {
		t.Errorf("NumPeople = %d, want 1", resp.Msg.State.Split.NumPeople)
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request ID header")
	}
}

func TestUpdateField(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()
	fillTrip(t, client)

	resp, err := client.GetTrip(context.Background(), connect.NewRequest(&pb.GetTripRequest{}))
	if err != nil {
		t.Fatalf("GetTrip failed: %v", err)
	}
	if resp.Msg.State.Inputs.Consumption != 6.5 {
		t.Errorf("Consumption = %v, want 6.5", resp.Msg.State.Inputs.Consumption)
	}
	if math.Abs(resp.Msg.State.Totals.TotalLiters-29.25) > 1e-9 {
		t.Errorf("TotalLiters = %v, want 29.25", resp.Msg.State.Totals.TotalLiters)
	}
	if math.Abs(resp.Msg.State.Totals.TotalCost-45.3375) > 1e-9 {
		t.Errorf("TotalCost = %v, want 45.3375", resp.Msg.State.Totals.TotalCost)
	}
}

func TestUpdateField_UnknownField(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()

	_, err := client.UpdateField(context.Background(), connect.NewRequest(&pb.UpdateFieldRequest{Field: "speed", Value: "1"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestSetPeople(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()
	ctx := context.Background()

	_, err := client.UpdateField(ctx, connect.NewRequest(&pb.UpdateFieldRequest{Field: "distance", Value: "100"}))
	if err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	client.UpdateField(ctx, connect.NewRequest(&pb.UpdateFieldRequest{Field: "consumption", Value: "10"}))
	client.UpdateField(ctx, connect.NewRequest(&pb.UpdateFieldRequest{Field: "price", Value: "10"}))

	resp, err := client.SetPeople(ctx, connect.NewRequest(&pb.SetPeopleRequest{NumPeople: 4}))
	if err != nil {
		t.Fatalf("SetPeople failed: %v", err)
	}
	if resp.Msg.State.Split.CostPerPerson != 25 {
		t.Errorf("CostPerPerson = %v, want 25", resp.Msg.State.Split.CostPerPerson)
	}

	_, err = client.SetPeople(ctx, connect.NewRequest(&pb.SetPeopleRequest{NumPeople: 0}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestRequestHelper_RoundTrip(t *testing.T) {
	client, cleanup := setupTestServer(t, cannedAnswer("La distancia es de 150 km"))
	defer cleanup()

	resp, err := client.RequestHelper(context.Background(), connect.NewRequest(&pb.RequestHelperRequest{
		Kind:        "distance",
		Origin:      "Madrid",
		Destination: "Toledo",
		TripType:    "round-trip",
	}))
	if err != nil {
		t.Fatalf("RequestHelper failed: %v", err)
	}
	if resp.Msg.Value != 300 {
		t.Errorf("Value = %v, want 300", resp.Msg.Value)
	}
	if resp.Msg.State.Inputs.Distance != 300 {
		t.Errorf("Distance = %v, want 300", resp.Msg.State.Inputs.Distance)
	}
}

func TestRequestHelper_NoNumber(t *testing.T) {
	client, cleanup := setupTestServer(t, cannedAnswer("No tengo datos"))
	defer cleanup()

	_, err := client.RequestHelper(context.Background(), connect.NewRequest(&pb.RequestHelperRequest{
		Kind:     "price",
		Location: "Granada",
	}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "try being more specific") {
		t.Errorf("error %q should suggest a retry", err)
	}
}

func TestRequestHelper_InvalidArguments(t *testing.T) {
	client, cleanup := setupTestServer(t, cannedAnswer("5"))
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *pb.RequestHelperRequest
	}{
		{name: "unknown kind", req: &pb.RequestHelperRequest{Kind: "tolls"}},
		{name: "unknown trip type", req: &pb.RequestHelperRequest{Kind: "distance", Origin: "a", Destination: "b", TripType: "loop"}},
		{name: "unknown route profile", req: &pb.RequestHelperRequest{Kind: "consumption", Vehicle: "Golf", RouteProfile: "offroad"}},
		{name: "unknown fuel", req: &pb.RequestHelperRequest{Kind: "price", Location: "Vigo", FuelType: "hydrogen"}},
		{name: "missing vehicle", req: &pb.RequestHelperRequest{Kind: "consumption"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.RequestHelper(ctx, connect.NewRequest(tt.req))
			if connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestGenerateInsights(t *testing.T) {
	t.Run("empty trip", func(t *testing.T) {
		client, cleanup := setupTestServer(t, cannedAnswer("[]"))
		defer cleanup()

		_, err := client.GenerateInsights(context.Background(), connect.NewRequest(&pb.GenerateInsightsRequest{}))
		if connect.CodeOf(err) != connect.CodeFailedPrecondition {
			t.Errorf("expected FailedPrecondition, got %v", err)
		}
	})

	t.Run("tips are returned and held", func(t *testing.T) {
		client, cleanup := setupTestServer(t, cannedAnswer(`[{"title":"Speed","tip":"Keep 100 km/h","impact":"high"}]`))
		defer cleanup()
		fillTrip(t, client)
		ctx := context.Background()

		resp, err := client.GenerateInsights(ctx, connect.NewRequest(&pb.GenerateInsightsRequest{}))
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		if len(resp.Msg.Insights) != 1 || resp.Msg.Insights[0].Impact != "high" {
			t.Errorf("Insights = %+v", resp.Msg.Insights)
		}

		state, err := client.GetTrip(ctx, connect.NewRequest(&pb.GetTripRequest{}))
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if len(state.Msg.State.Insights) != 1 {
			t.Errorf("held insights = %+v, want 1", state.Msg.State.Insights)
		}

		reset, err := client.ResetTrip(ctx, connect.NewRequest(&pb.ResetTripRequest{}))
		if err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		if len(reset.Msg.State.Insights) != 0 || reset.Msg.State.Inputs.Distance != 0 {
			t.Errorf("state after reset = %+v", reset.Msg.State)
		}
	})

	t.Run("malformed JSON gives no tips", func(t *testing.T) {
		client, cleanup := setupTestServer(t, cannedAnswer(`[{"title":`))
		defer cleanup()
		fillTrip(t, client)

		resp, err := client.GenerateInsights(context.Background(), connect.NewRequest(&pb.GenerateInsightsRequest{}))
		if err != nil {
			t.Fatalf("GenerateInsights failed: %v", err)
		}
		if len(resp.Msg.Insights) != 0 {
			t.Errorf("Insights = %+v, want none", resp.Msg.Insights)
		}
	})
}

func TestShareSummary(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()
	ctx := context.Background()

	_, err := client.ShareSummary(ctx, connect.NewRequest(&pb.ShareSummaryRequest{}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition on empty trip, got %v", err)
	}

	fillTrip(t, client)
	if _, err := client.SetPeople(ctx, connect.NewRequest(&pb.SetPeopleRequest{NumPeople: 2})); err != nil {
		t.Fatalf("SetPeople failed: %v", err)
	}

	resp, err := client.ShareSummary(ctx, connect.NewRequest(&pb.ShareSummaryRequest{}))
	if err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}
	if resp.Msg.Title == "" {
		t.Error("expected a share title")
	}
	if !strings.Contains(resp.Msg.Text, "Split between: 2 people") {
		t.Errorf("Text = %s", resp.Msg.Text)
	}
}

func TestSetTheme(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()
	ctx := context.Background()

	resp, err := client.SetTheme(ctx, connect.NewRequest(&pb.SetThemeRequest{Toggle: true}))
	if err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if resp.Msg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", resp.Msg.Theme)
	}

	resp, err = client.SetTheme(ctx, connect.NewRequest(&pb.SetThemeRequest{Theme: "light"}))
	if err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if resp.Msg.Theme != "light" {
		t.Errorf("Theme = %q, want light", resp.Msg.Theme)
	}

	_, err = client.SetTheme(ctx, connect.NewRequest(&pb.SetThemeRequest{Theme: "sepia"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestUpdateField_ProtoJSON(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled(), connect.WithProtoJSON())
	defer cleanup()

	resp, err := client.UpdateField(context.Background(), connect.NewRequest(&pb.UpdateFieldRequest{Field: "distance", Value: "12,5 km"}))
	if err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	if resp.Msg.State.GetInputs().GetDistance() != 12.5 {
		t.Errorf("Distance = %v, want 12.5", resp.Msg.State.GetInputs().GetDistance())
	}
	if resp.Msg.State.GetTheme() != "light" {
		t.Errorf("Theme = %q, want light", resp.Msg.State.GetTheme())
	}
}

func TestUpdateField_NegativeClampedToZero(t *testing.T) {
	client, cleanup := setupTestServer(t, assistant.Disabled())
	defer cleanup()
	fillTrip(t, client)
	ctx := context.Background()

	resp, err := client.UpdateField(ctx, connect.NewRequest(&pb.UpdateFieldRequest{Field: "distance", Value: "-450"}))
	if err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	if resp.Msg.State.Inputs.Distance != 0 {
		t.Errorf("Distance = %v, want 0", resp.Msg.State.Inputs.Distance)
	}
	if resp.Msg.State.Totals.TotalCost != 0 {
		t.Errorf("TotalCost = %v, want 0", resp.Msg.State.Totals.TotalCost)
	}

	_, err = client.ShareSummary(ctx, connect.NewRequest(&pb.ShareSummaryRequest{}))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Errorf("expected FailedPrecondition, got %v", err)
	}
}
