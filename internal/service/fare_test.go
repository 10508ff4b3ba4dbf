package service

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridefare/internal/domain"
)

func TestFareService_CreateRide_ValidInput(t *testing.T) {
	t.Parallel()

	svc := NewFareService(nil)
	rates := map[string]float64{"bike": 10, "car": 20}

	for rideType, rate := range rates {
		for _, distance := range []float64{0.001, 0.5, 1, 3.5, 5, 12.75, 1000} {
			ride, err := svc.CreateRide(rideType, distance)
			require.NoError(t, err, "%s %v", rideType, distance)

			assert.Equal(t, rideType, ride.Type().String())
			assert.Equal(t, distance, ride.DistanceKm())
			assert.Equal(t, distance*rate, svc.CalculateFare(ride))
		}
	}
}

func TestFareService_CreateRide_NonPositiveDistance(t *testing.T) {
	t.Parallel()

	svc := NewFareService(nil)

	for _, rideType := range []string{"bike", "car", "scooter", ""} {
		for _, distance := range []float64{0, -0.0001, -1, -250} {
			_, err := svc.CreateRide(rideType, distance)
			require.Error(t, err)

			assert.True(t, errors.Is(err, ErrInvalidDistance), "%q %v", rideType, distance)
			assert.Equal(t, KindInvalidDistance, KindOf(err))
			assert.Equal(t, "Distance must be greater than 0", err.Error())
		}
	}
}

func TestFareService_CreateRide_UnknownRideType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		message string
	}{
		{input: "scooter", message: "Invalid ride type entered: scooter"},
		{input: "  AUTO ", message: "Invalid ride type entered: auto"},
		{input: "", message: "Invalid ride type entered: "},
		{input: "bikes", message: "Invalid ride type entered: bikes"},
	}

	svc := NewFareService(nil)
	for _, tt := range tests {
		_, err := svc.CreateRide(tt.input, 4)
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrInvalidRideType)
		assert.NotErrorIs(t, err, ErrInvalidDistance)
		assert.Equal(t, tt.message, err.Error())
	}
}

func TestFareService_CreateRide_CaseAndWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	svc := NewFareService(nil)
	want, err := svc.CreateRide("bike", 2)
	require.NoError(t, err)

	for _, input := range []string{"  BIKE  ", "Bike", "bike", "\tbIkE\r"} {
		got, err := svc.CreateRide(input, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFareService_Quote_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rideType  string
		distance  float64
		driver    string
		vehicle   string
		fare      float64
		wantKind  ErrorKind
		wantError string
	}{
		{name: "bike", rideType: "bike", distance: 5.0, driver: "Raju", vehicle: "AP39AB1234", fare: 50},
		{name: "car", rideType: "car", distance: 3.5, driver: "Suresh", vehicle: "AP39CD5678", fare: 70},
		{name: "unknown type", rideType: "scooter", distance: 4.0, wantKind: KindInvalidRideType, wantError: "Invalid ride type entered: scooter"},
		{name: "negative distance", rideType: "bike", distance: -1.0, wantKind: KindInvalidDistance, wantError: "Distance must be greater than 0"},
		{name: "distance checked first", rideType: "CAR", distance: 0, wantKind: KindInvalidDistance, wantError: "Distance must be greater than 0"},
		{name: "both invalid", rideType: "boat", distance: -3, wantKind: KindInvalidDistance, wantError: "Distance must be greater than 0"},
	}

	svc := NewFareService(nil)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quote, err := svc.Quote(tt.rideType, tt.distance)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
				assert.EqualError(t, err, tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.driver, quote.Ride.DriverName())
			assert.Equal(t, tt.vehicle, quote.Ride.VehicleNumber())
			assert.Equal(t, tt.fare, quote.Fare)
			assert.Equal(t, domain.CurrencyINR, quote.Currency)
		})
	}
}

func TestParseDistance(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]float64{"5": 5, "5.0": 5, " 3.5 ": 3.5, "-1": -1, "0": 0, "1e2": 100} {
		got, err := ParseDistance(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"abc", "", "5km", "NaN", "Inf", "-Infinity", "0x1p3", "-0X10", "1_000", "1e400"} {
		_, err := ParseDistance(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, ErrInvalidInputFormat)
		assert.Equal(t, KindInvalidInputFormat, KindOf(err))
	}
}

func TestParseDistance_KeepsCause(t *testing.T) {
	t.Parallel()

	_, err := ParseDistance("ten")
	require.Error(t, err)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Equal(t, "Invalid distance entered: ten", err.Error())
}

func TestKindOf_ForeignError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestFareService_Quote_FareOverflow(t *testing.T) {
	t.Parallel()

	svc := NewFareService(nil)

	for _, rideType := range []string{"bike", "car"} {
		_, err := svc.Quote(rideType, math.MaxFloat64)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDistance)
		assert.EqualError(t, err, "Distance is too large to price")
	}

	_, err := svc.Quote("car", 1e308)
	assert.ErrorIs(t, err, ErrInvalidDistance)

	quote, err := svc.Quote("bike", 1e300)
	require.NoError(t, err)
	assert.False(t, math.IsInf(quote.Fare, 0))
}
