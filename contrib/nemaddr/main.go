package main

import (
	"fmt"
	"os"

	"github.com/spikeekips/nemaddress/launch/cmds"
	"github.com/spikeekips/nemaddress/util"
)

var Version = "v0.0.1"

var mainFlags = struct {
	Validate cmds.ValidateCommand `cmd:"" help:"validate addresses"`
	Check    cmds.CheckCommand    `cmd:"" help:"check json records of address and networks"`
	Inspect  cmds.InspectCommand  `cmd:"" help:"print the parts of address"`
	Version  cmds.VersionCommand  `cmd:"" help:"print version"`
}{
	Validate: cmds.NewValidateCommand(),
	Check:    cmds.NewCheckCommand(),
	Inspect:  cmds.NewInspectCommand(),
	Version:  cmds.NewVersionCommand(),
}

func main() {
	kctx, err := cmds.Context(os.Args[1:], &mainFlags)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)

		os.Exit(1)
	}

	version := util.Version(Version)
	if err := version.IsValid(nil); err != nil {
		kctx.FatalIfErrorf(err)
	}

	kctx.FatalIfErrorf(kctx.Run(version))
}
