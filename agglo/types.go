package agglo

// This file declares the sweep options and sentinel errors.

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for driver operations.
var (
	// ErrNilMerging indicates a nil merging engine was passed.
	ErrNilMerging = errors.New("agglo: merging engine must not be nil")
	// ErrNilVolume indicates a nil fragment volume was passed.
	ErrNilVolume = errors.New("agglo: fragment volume must not be nil")
	// ErrNoThresholds indicates an empty threshold list.
	ErrNoThresholds = errors.New("agglo: at least one threshold required")
	// ErrUnsortedThresholds indicates thresholds not strictly ascending.
	ErrUnsortedThresholds = errors.New("agglo: thresholds must be strictly ascending")
)

// Options configures a threshold sweep.
type Options struct {
	// Thresholds is the strictly ascending list of score thresholds; one
	// segmentation is emitted per entry.
	Thresholds []float64

	// Logger receives progress at Info level. Nil keeps the sweep silent.
	Logger *logrus.Logger
}

// Validate reports the first configuration problem, or nil.
func (o Options) Validate() error {
	if len(o.Thresholds) == 0 {
		return ErrNoThresholds
	}
	for i := 1; i < len(o.Thresholds); i++ {
		if o.Thresholds[i] <= o.Thresholds[i-1] {
			return ErrUnsortedThresholds
		}
	}
	return nil
}

// logf logs through the configured logger, if any.
func (o Options) logf(fields logrus.Fields, msg string) {
	if o.Logger == nil {
		return
	}
	o.Logger.WithFields(fields).Info(msg)
}
