package cli

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kenmoini/unifi-facts/observability"
)

// newLogger builds the CLI logger: zerolog on stderr, every line tagged
// with a run id so one invocation's output correlates. Stdout stays
// reserved for result JSON.
func newLogger(level string) (observability.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	zl := zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	return observability.NewZerologLogger(zl), nil
}
