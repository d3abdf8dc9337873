package cmds

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/spikeekips/nemaddress/address"
	"github.com/spikeekips/nemaddress/launch/config"
	"github.com/spikeekips/nemaddress/util"
)

var InvalidAddressFoundError = util.NewError("invalid address found")

var ValidateVars = kong.Vars{
	"batch_limit": "0",
}

type ValidateCommand struct {
	*BaseCommand
	Addresses []string `arg:"" name:"address" help:"addresses; '-' reads addresses from stdin, one per line"`
	Networks  []string `name:"network" help:"accepted networks {mainnet mijin testnet <integer>}; repeatable"`
	Config    string   `name:"config" help:"yaml config file" type:"existingfile"`
	Limit     int64    `name:"limit" help:"number of concurrent validations" default:"${batch_limit}"`
	conf      config.Config
	ids       address.NetworkIDs
}

func NewValidateCommand() ValidateCommand {
	return ValidateCommand{
		BaseCommand: NewBaseCommand("validate"),
	}
}

func (cmd *ValidateCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return errors.Wrap(err, "failed to initialize command")
	}

	if err := cmd.prepare(); err != nil {
		return err
	}

	addresses, err := cmd.addresses()
	if err != nil {
		return err
	}

	v := address.NewValidator(nil, nil)
	_ = v.SetLogging(cmd.Logging)

	results, err := v.ValidateBatch(context.Background(), addresses, cmd.ids, cmd.conf.BatchLimit)
	if err != nil {
		return err
	}

	var invalids int
	for i := range results {
		if !results[i].Valid {
			invalids++
		}

		if err := cmd.print(results[i]); err != nil {
			return err
		}
	}

	cmd.Log().Debug().Int("addresses", len(results)).Int("invalids", invalids).Msg("validated")

	if invalids > 0 {
		return InvalidAddressFoundError.Errorf("%d of %d", invalids, len(results))
	}

	return nil
}

func (cmd *ValidateCommand) prepare() error {
	cmd.conf = config.DefaultConfig()

	if len(cmd.Config) > 0 {
		i, err := config.Load(cmd.Config)
		if err != nil {
			return err
		}

		cmd.conf = i
	}

	if cmd.Limit > 0 {
		cmd.conf.BatchLimit = cmd.Limit
	}

	cmd.ids = cmd.conf.Networks

	if len(cmd.Networks) > 0 {
		i, err := address.ParseNetworkIDs(cmd.Networks)
		if err != nil {
			return err
		}

		cmd.ids = i
	}

	cmd.Log().Debug().Strs("networks", cmd.ids.Strings()).Int64("limit", cmd.conf.BatchLimit).Msg("prepared")

	return nil
}

func (cmd *ValidateCommand) addresses() ([]string, error) {
	var addresses []string

	var stdin bool
	for i := range cmd.Addresses {
		if strings.TrimSpace(cmd.Addresses[i]) != "-" {
			addresses = append(addresses, cmd.Addresses[i])

			continue
		}

		if stdin {
			continue
		}
		stdin = true

		if err := util.Readlines(cmd.In, func(b []byte) error {
			addresses = append(addresses, strings.TrimSpace(string(b)))

			return nil
		}); err != nil {
			return nil, errors.Wrap(err, "failed to read addresses")
		}
	}

	return addresses, nil
}
