package service

import (
	"github.com/mmynk/gastrip/internal/models"
	"github.com/mmynk/gastrip/internal/session"
	pb "github.com/mmynk/gastrip/pkg/proto"
)

func stateToProto(state session.State) *pb.TripState {
	return &pb.TripState{
		Inputs: &pb.TripInputs{
			Distance:    state.Inputs.Distance,
			Consumption: state.Inputs.Consumption,
			Price:       state.Inputs.Price,
		},
		Totals: &pb.TripTotals{
			TotalLiters: state.Totals.TotalLiters,
			TotalCost:   state.Totals.TotalCost,
			CostPerKm:   state.Totals.CostPerKm,
			Co2Kg:       state.Totals.CO2Kg,
		},
		Split: &pb.CostSplit{
			NumPeople:     int32(state.Split.NumPeople),
			CostPerPerson: state.Split.CostPerPerson,
		},
		Insights: insightsToProto(state.Insights),
		Theme:    string(state.Theme),
	}
}

func insightsToProto(insights []models.Insight) []*pb.Insight {
	protoInsights := make([]*pb.Insight, len(insights))
	for i, in := range insights {
		protoInsights[i] = &pb.Insight{
			Title:  in.Title,
			Tip:    in.Tip,
			Impact: string(in.Impact),
		}
	}
	return protoInsights
}

// queryFromProto builds the assistant query for a helper request.
func queryFromProto(req *pb.RequestHelperRequest) (models.Query, error) {
	kind, err := models.ParseHelperKind(req.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case models.HelperDistance:
		tripType, err := models.ParseTripType(req.TripType)
		if err != nil {
			return nil, err
		}
		return models.DistanceQuery{Origin: req.Origin, Destination: req.Destination, TripType: tripType}, nil
	case models.HelperConsumption:
		profile, err := models.ParseRouteProfile(req.RouteProfile)
		if err != nil {
			return nil, err
		}
		return models.ConsumptionQuery{Vehicle: req.Vehicle, RouteProfile: profile}, nil
	default:
		fuel, err := models.ParseFuelType(req.FuelType)
		if err != nil {
			return nil, err
		}
		return models.PriceQuery{Location: req.Location, FuelType: fuel}, nil
	}
}
