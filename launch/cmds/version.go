package cmds

import (
	"fmt"

	"github.com/spikeekips/nemaddress/util"
)

type VersionCommand struct {
	*BaseCommand
}

func NewVersionCommand() VersionCommand {
	return VersionCommand{
		BaseCommand: NewBaseCommand("version"),
	}
}

func (cmd *VersionCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return err
	}

	_, err := fmt.Fprintln(cmd.Out, cmd.Version().String())

	return err
}
