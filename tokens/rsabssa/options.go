package rsabssa

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type options struct {
	logger logrus.FieldLogger
	random io.Reader
	clock  func() time.Time
}

// Option configures a Client or an Issuer.
type Option func(*options)

// WithLogger sets the logger. Only run metadata (use case, key version, batch
// size) is logged, never messages, masks or signatures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRandom sets the source of masks and blinding randomness. It must be a
// cryptographically secure reader outside of tests.
func WithRandom(random io.Reader) Option {
	return func(o *options) {
		o.random = random
	}
}

// WithClock sets the clock used to check key validity windows.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newOptions(opts []Option) options {
	o := options{
		logger: discardLogger(),
		random: rand.Reader,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}
	if o.random == nil {
		o.random = rand.Reader
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}
