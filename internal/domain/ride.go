package domain

import (
	"errors"
	"strings"
)

// RideType represents the class of vehicle a ride is booked on.
type RideType string

const (
	RideTypeBike RideType = "bike"
	RideTypeCar  RideType = "car"
)

var (
	// ErrUnknownRideType is returned by NewRide for a ride type outside the catalogue.
	ErrUnknownRideType = errors.New("unknown ride type")

	// ErrNonPositiveDistance is returned by NewRide for a distance that is not above zero.
	ErrNonPositiveDistance = errors.New("distance must be positive")
)

// rideProfile holds everything that is fixed by the ride type.
type rideProfile struct {
	driverName    string
	vehicleNumber string
	farePerKm     float64
}

var rideProfiles = map[RideType]rideProfile{
	RideTypeBike: {driverName: "Raju", vehicleNumber: "AP39AB1234", farePerKm: 10},
	RideTypeCar:  {driverName: "Suresh", vehicleNumber: "AP39CD5678", farePerKm: 20},
}

// RideTypes returns every supported ride type in declaration order.
func RideTypes() []RideType {
	return []RideType{RideTypeBike, RideTypeCar}
}

// ParseRideType matches text against the known ride types, ignoring case
// and surrounding whitespace.
func ParseRideType(text string) (RideType, bool) {
	t := RideType(NormalizeRideType(text))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// NormalizeRideType trims and lowercases user supplied ride type text.
func NormalizeRideType(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Valid reports whether t is one of the supported ride types.
func (t RideType) Valid() bool {
	_, ok := rideProfiles[t]
	return ok
}

func (t RideType) String() string {
	return string(t)
}

// DriverName returns the driver serving this ride type.
func (t RideType) DriverName() string {
	return rideProfiles[t].driverName
}

// VehicleNumber returns the registration of the vehicle serving this ride type.
func (t RideType) VehicleNumber() string {
	return rideProfiles[t].vehicleNumber
}

// FarePerKm returns the rate charged per kilometre.
func (t RideType) FarePerKm() float64 {
	return rideProfiles[t].farePerKm
}

// Ride represents a single priced trip. A Ride is only obtained through
// NewRide, so its distance is always positive.
type Ride struct {
	rideType   RideType
	distanceKm float64
}

// NewRide builds a Ride from an already parsed ride type.
func NewRide(rideType RideType, distanceKm float64) (Ride, error) {
	if !rideType.Valid() {
		return Ride{}, ErrUnknownRideType
	}
	if !(distanceKm > 0) {
		return Ride{}, ErrNonPositiveDistance
	}
	return Ride{rideType: rideType, distanceKm: distanceKm}, nil
}

func (r Ride) Type() RideType        { return r.rideType }
func (r Ride) DriverName() string    { return r.rideType.DriverName() }
func (r Ride) VehicleNumber() string { return r.rideType.VehicleNumber() }
func (r Ride) DistanceKm() float64   { return r.distanceKm }
func (r Ride) FarePerKm() float64    { return r.rideType.FarePerKm() }
