package service

import "errors"

// ErrorKind classifies why a fare could not be computed.
type ErrorKind string

const (
	KindInvalidDistance    ErrorKind = "INVALID_DISTANCE"
	KindInvalidRideType    ErrorKind = "INVALID_RIDE_TYPE"
	KindInvalidInputFormat ErrorKind = "INVALID_INPUT_FORMAT"
)

var (
	// ErrInvalidDistance is returned when the distance is zero or negative.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrInvalidRideType is returned when the ride type is neither bike nor car.
	ErrInvalidRideType = errors.New("invalid ride type")

	// ErrInvalidInputFormat is returned when the input cannot be read or parsed.
	ErrInvalidInputFormat = errors.New("invalid input format")
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidDistance:    ErrInvalidDistance,
	KindInvalidRideType:    ErrInvalidRideType,
	KindInvalidInputFormat: ErrInvalidInputFormat,
}

// FareError is the error returned by every fare operation. Message is
// shown to the rider verbatim.
type FareError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FareError) Error() string {
	return e.Message
}

func (e *FareError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a FareError against its kind's sentinel.
func (e *FareError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindOf returns the kind of a fare error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var fe *FareError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
