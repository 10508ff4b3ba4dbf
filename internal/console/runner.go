package console

import (
	"io"

	"go.uber.org/zap"

	"ridefare/internal/service"
)

// Runner drives a single console fare request.
type Runner struct {
	fares      *service.FareService
	logger     *zap.Logger
	strictExit bool
}

// NewRunner creates a new Runner. With strictExit set, a rejected request
// exits with status 1 instead of 0.
func NewRunner(fares *service.FareService, logger *zap.Logger, strictExit bool) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		fares:      fares,
		logger:     logger,
		strictExit: strictExit,
	}
}

// Run reads one request from in, writes the receipt or error line to out
// and returns the process exit status.
func (r *Runner) Run(in io.Reader, out io.Writer) int {
	req, err := ReadRequest(in)
	if err != nil {
		return r.fail(out, err)
	}

	quote, err := r.fares.Quote(req.RideType, req.DistanceKm)
	if err != nil {
		return r.fail(out, err)
	}

	if err := WriteReceipt(out, quote); err != nil {
		r.logger.Error("failed to write receipt", zap.Error(err))
		return 1
	}
	return 0
}

func (r *Runner) fail(out io.Writer, err error) int {
	r.logger.Debug("fare request rejected",
		zap.String("kind", string(service.KindOf(err))),
		zap.Error(err),
	)

	if werr := WriteError(out, err); werr != nil {
		r.logger.Error("failed to write error", zap.Error(werr))
		return 1
	}
	if r.strictExit {
		return 1
	}
	return 0
}
