// Package assert is the fluent entry point of fluentcheck.
//
// Wrap the value produced by the code under test and chain the assertions it must satisfy:
//
//	assert.New(t).ThatLocalDateTime(got).IsAfterOrEqualTo(reference).IsBefore("2001-01-01T00:00:00")
//
// Every predicate accepts its argument either as the typed value (or a pointer to it) or as the
// textual form the value prints as. Both spellings behave identically, including the failure
// message. An assertion that passes returns the same facade so that the chain can continue. An
// assertion that fails raises exactly one error through the configured [Failer]:
//
//   - a *failure.AssertionError when the predicate does not hold, or when the actual value is absent;
//   - a *failure.ArgumentError when the argument is nil or of an unusable type;
//   - the parser's own error when a textual argument cannot be parsed.
//
// An absent actual value is always reported first, whatever is wrong with the arguments.
//
// The package-level functions ([ThatLocalDateTime], [ThatNumber], ...) use a default
// configuration that panics with the error; [Catch] turns such a panic back into an error.
// Use [New] with a *testing.T to report through the test instead.
//
// Failure messages are rendered from the templates of the message package. Pass
// [WithCatalog] or [WithRepresentation] to customize them, and [WithLogger] to have each raised
// error logged at debug level. By default nothing is logged.
package assert

import (
	"go.uber.org/zap"

	"github.com/fluentcheck/fluentcheck/failure"
	"github.com/fluentcheck/fluentcheck/message"
)

// Assertions carries the configuration shared by every facade it creates. It is immutable once
// built and safe to share between goroutines.
type Assertions struct {
	failer  Failer
	logger  *zap.Logger
	catalog *message.Catalog
	repr    message.Representation
}

// Option configures an Assertions.
type Option func(*Assertions)

// WithLogger logs every raised error at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Assertions) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCatalog replaces the message catalog. Templates missing from it make failures
// unrenderable, so derive it from message.Default() with Catalog.With.
func WithCatalog(catalog *message.Catalog) Option {
	return func(a *Assertions) {
		if catalog != nil {
			a.catalog = catalog
		}
	}
}

// WithRepresentation replaces how values are displayed in failure messages.
func WithRepresentation(r message.Representation) Option {
	return func(a *Assertions) {
		if r != nil {
			a.repr = r
		}
	}
}

// New returns Assertions reporting through f. A nil f panics with the raised error.
func New(f Failer, opts ...Option) *Assertions {
	if f == nil {
		f = panicking{}
	}
	a := &Assertions{
		failer:  f,
		logger:  zap.NewNop(),
		catalog: message.Default(),
		repr:    message.Standard,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var std = New(nil)

// raise hands err to the failer, after logging it.
func (a *Assertions) raise(kind string, description string, err error) {
	a.failer.Helper()

	loc := callerLocation()
	var template string
	if assertion, ok := failure.AsAssertion(err); ok {
		assertion.Location = loc
		template = assertion.Template
	}
	a.logger.Debug("assertion raised",
		zap.String("kind", kind),
		zap.String("template", template),
		zap.String("description", description),
		zap.Stringer("location", loc),
		zap.Error(err),
	)

	a.failer.Fatal(err)
}
