package console

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ridefare/internal/domain"
)

// WriteReceipt prints the four line ride summary.
func WriteReceipt(w io.Writer, quote domain.Quote) error {
	_, err := fmt.Fprintf(w,
		"Driver: %s\nVehicle No: %s\nDistance: %s km\nFare: ₹%s\n",
		quote.Ride.DriverName(),
		quote.Ride.VehicleNumber(),
		FormatNumber(quote.Ride.DistanceKm()),
		FormatNumber(quote.Fare),
	)
	return err
}

// WriteError prints a single error line.
func WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %s\n", err.Error())
	return werr
}

// FormatNumber renders f with the shortest digits that round-trip and
// always at least one fractional digit: 5 becomes "5.0", 3.25 stays
// "3.25". Magnitudes outside [1e-3, 1e7) use "d.dddEn" notation.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := f
	if abs < 0 {
		abs = -abs
	}

	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}
