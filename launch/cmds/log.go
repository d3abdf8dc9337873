package cmds

import (
	"bytes"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/logging"
)

const (
	JSONLogFormat     LogFormat = "json"
	TerminalLogFormat LogFormat = "terminal"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	zerolog.LevelFieldName = "l"
	zerolog.TimestampFieldName = "t"
	zerolog.MessageFieldName = "m"
	zerolog.InterfaceMarshalFunc = util.JSONMarshal
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	// NOTE the level of each command logger decides; --log-level trace has to
	// reach the validator.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.DisableSampling(true)
}

// LogVars keeps the command output clean by default; invalid addresses are
// reported in the output, not in the log.
var LogVars = kong.Vars{
	"log_level":  zerolog.ErrorLevel.String(),
	"log_format": string(TerminalLogFormat),
	"log_color":  "false",
}

type LogFlags struct {
	LogColor  bool      `help:"show color log" default:"${log_color}"`
	LogLevel  LogLevel  `help:"log level {trace debug info warn error} (default: ${log_level})" default:"${log_level}"`
	LogFormat LogFormat `help:"log format {json terminal} (default: ${log_format})" default:"${log_format}"`
	LogFile   []string  `name:"log" help:"log file; repeatable"`
}

// NewLogging builds the root logger of command; without --log, logs go to
// defaultout.
func (flags *LogFlags) NewLogging(defaultout io.Writer) (*logging.Logging, error) {
	output := defaultout
	if len(flags.LogFile) > 0 {
		i, err := logging.Outputs(flags.LogFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open log files")
		}

		output = i
	}

	return logging.Setup(
		output,
		flags.LogLevel.Zero(),
		string(flags.LogFormat),
		flags.LogColor,
	), nil
}

type LogLevel zerolog.Level

func (ll LogLevel) Zero() zerolog.Level {
	return zerolog.Level(ll)
}

func (ll LogLevel) MarshalText() ([]byte, error) {
	return []byte(ll.Zero().String()), nil
}

func (ll *LogLevel) UnmarshalText(b []byte) error {
	lvl, err := zerolog.ParseLevel(string(bytes.TrimSpace(b)))
	if err != nil {
		return errors.Wrap(err, "invalid log_level")
	}

	*ll = LogLevel(lvl)

	return nil
}

type LogFormat string

func (lf *LogFormat) UnmarshalText(b []byte) error {
	switch f := LogFormat(bytes.TrimSpace(bytes.ToLower(b))); f {
	case JSONLogFormat, TerminalLogFormat:
		*lf = f

		return nil
	default:
		return errors.Errorf("invalid log_format: %q", f)
	}
}
