package cmds

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spikeekips/nemaddress/util"
	"github.com/spikeekips/nemaddress/util/logging"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	DefaultName        = "nemaddr"
	DefaultDescription = "validates NEM account addresses"
	MainOptions        = kong.HelpOptions{NoAppSummary: false, Compact: true, Summary: false, Tree: true}
)

var defaultKongOptions = []kong.Option{
	kong.Name(DefaultName),
	kong.Description(DefaultDescription),
	kong.UsageOnError(),
	kong.ConfigureHelp(MainOptions),
	LogVars,
	ValidateVars,
}

func Context(args []string, flags interface{}, options ...kong.Option) (*kong.Context, error) {
	ops := make([]kong.Option, len(defaultKongOptions)+len(options))
	copy(ops, defaultKongOptions)
	copy(ops[len(defaultKongOptions):], options)

	p, err := kong.New(flags, ops...)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

type BaseCommand struct {
	*logging.Logging
	*LogFlags
	LogOutput io.Writer `kong:"-"`
	Out       io.Writer `kong:"-"`
	In        io.Reader `kong:"-"`
	version   util.Version
}

func NewBaseCommand(name string) *BaseCommand {
	return &BaseCommand{
		Logging:  logging.NewModuleLogging(fmt.Sprintf("command-%s", name)),
		LogFlags: &LogFlags{},
	}
}

func (cmd *BaseCommand) Initialize(flags interface{}, version util.Version) error {
	if cmd.LogOutput == nil {
		cmd.LogOutput = os.Stderr
	}

	if cmd.Out == nil {
		cmd.Out = os.Stdout
	}

	if cmd.In == nil {
		cmd.In = os.Stdin
	}

	i, err := cmd.LogFlags.NewLogging(cmd.LogOutput)
	if err != nil {
		return err
	}
	_ = cmd.SetLogging(i)

	_, _ = maxprocs.Set(maxprocs.Logger(func(f string, s ...interface{}) {
		cmd.Log().Debug().Msgf(f, s...)
	}))

	cmd.Log().Debug().Interface("flags", flags).Msg("flags parsed")

	if err := version.IsValid(nil); err != nil {
		return err
	}
	cmd.version = version

	return nil
}

func (cmd *BaseCommand) Version() util.Version {
	return cmd.version
}

// print writes i as one line of json.
func (cmd *BaseCommand) print(i interface{}) error {
	return cmd.printJSON(i, false)
}

func (cmd *BaseCommand) printJSON(i interface{}, indent bool) error {
	var b []byte
	var err error

	if indent {
		b, err = util.JSONMarshalIndent(i)
	} else {
		b, err = util.JSONMarshal(i)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Out, string(b))

	return err
}
