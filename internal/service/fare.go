package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ridefare/internal/domain"
)

// FareService validates ride requests and prices them.
type FareService struct {
	logger *zap.Logger
}

// NewFareService creates a new FareService. A nil logger disables logging.
func NewFareService(logger *zap.Logger) *FareService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FareService{logger: logger}
}

// CreateRide validates the request and builds the matching Ride.
// Distance is checked before the ride type, so a request that is wrong on
// both counts reports the distance.
func (s *FareService) CreateRide(rideTypeText string, distanceKm float64) (domain.Ride, error) {
	if !(distanceKm > 0) {
		return domain.Ride{}, &FareError{
			Kind:    KindInvalidDistance,
			Message: "Distance must be greater than 0",
		}
	}

	rideType, ok := domain.ParseRideType(rideTypeText)
	if !ok {
		return domain.Ride{}, &FareError{
			Kind:    KindInvalidRideType,
			Message: "Invalid ride type entered: " + domain.NormalizeRideType(rideTypeText),
		}
	}

	ride, err := domain.NewRide(rideType, distanceKm)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("failed to build %s ride: %w", rideType, err)
	}
	return ride, nil
}

// CalculateFare returns distance times the per-kilometre rate, unrounded.
func (s *FareService) CalculateFare(ride domain.Ride) float64 {
	return ride.DistanceKm() * ride.FarePerKm()
}

// Quote creates the ride and prices it.
func (s *FareService) Quote(rideTypeText string, distanceKm float64) (domain.Quote, error) {
	ride, err := s.CreateRide(rideTypeText, distanceKm)
	if err != nil {
		s.logger.Debug("ride rejected",
			zap.String("kind", string(KindOf(err))),
			zap.String("ride_type", rideTypeText),
			zap.Float64("distance_km", distanceKm),
		)
		return domain.Quote{}, err
	}

	fare := s.CalculateFare(ride)
	if math.IsInf(fare, 0) || math.IsNaN(fare) {
		s.logger.Debug("fare overflow",
			zap.Stringer("ride_type", ride.Type()),
			zap.Float64("distance_km", distanceKm),
		)
		return domain.Quote{}, &FareError{
			Kind:    KindInvalidDistance,
			Message: "Distance is too large to price",
		}
	}

	quote := domain.Quote{
		Ride:     ride,
		Fare:     fare,
		Currency: domain.CurrencyINR,
	}

	s.logger.Debug("ride priced",
		zap.Stringer("ride_type", ride.Type()),
		zap.Float64("distance_km", ride.DistanceKm()),
		zap.Float64("fare", quote.Fare),
	)

	return quote, nil
}

// ParseDistance parses a distance token. Non-numeric text, hex floats,
// digit separators and non-finite values are input format errors; range
// checks are left to CreateRide.
func ParseDistance(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if !isDecimalToken(text) {
		return 0, &FareError{
			Kind:    KindInvalidInputFormat,
			Message: "Invalid distance entered: " + text,
		}
	}
	distance, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &FareError{
			Kind:    KindInvalidInputFormat,
			Message: "Invalid distance entered: " + text,
			Err:     err,
		}
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, &FareError{
			Kind:    KindInvalidInputFormat,
			Message: "Invalid distance entered: " + text,
		}
	}
	return distance, nil
}

// isDecimalToken rejects the number forms strconv accepts beyond plain
// decimal and exponent notation.
func isDecimalToken(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}
	return !strings.Contains(text, "_")
}
