package console

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"ridefare/internal/service"
)

// Request is one fare request read from the console.
type Request struct {
	RideType   string
	DistanceKm float64
}

// ReadRequest reads the ride type from the first line and the distance
// from the next whitespace separated token, which may sit on any later line.
func ReadRequest(r io.Reader) (Request, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Request{}, inputError("failed to read ride type", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return Request{}, inputError("No ride type provided", nil)
	}
	rideType := strings.TrimRight(line, "\r\n")

	scanner := bufio.NewScanner(br)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Request{}, inputError("failed to read distance", err)
		}
		return Request{}, inputError("No distance provided", nil)
	}

	distance, err := service.ParseDistance(scanner.Text())
	if err != nil {
		return Request{}, err
	}

	return Request{RideType: rideType, DistanceKm: distance}, nil
}

func inputError(message string, cause error) error {
	return &service.FareError{
		Kind:    service.KindInvalidInputFormat,
		Message: message,
		Err:     cause,
	}
}
