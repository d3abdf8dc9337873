package cmds

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spikeekips/nemaddress/address"
	"github.com/spikeekips/nemaddress/util"
)

type checkRecord struct {
	Address  interface{} `json:"address"`
	Networks interface{} `json:"networks"`
}

type checkResult struct {
	Address interface{} `json:"address"`
	Valid   bool        `json:"valid"`
	Error   string      `json:"error,omitempty"`
}

// CheckCommand reads a json list of {"address": .., "networks": [..]} and
// checks each without assuming the types of the values.
type CheckCommand struct {
	*BaseCommand
	Input string `arg:"" name:"input" help:"json file; '-' is stdin"`
}

func NewCheckCommand() CheckCommand {
	return CheckCommand{
		BaseCommand: NewBaseCommand("check"),
	}
}

func (cmd *CheckCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return errors.Wrap(err, "failed to initialize command")
	}

	b, err := cmd.read()
	if err != nil {
		return err
	}

	var records []checkRecord
	if err := util.JSONUnmarshalWithNumber(b, &records); err != nil {
		return errors.Wrap(err, "failed to decode input")
	}

	var invalids int
	for i := range records {
		r := records[i]

		ok, err := address.CheckAddress(r.Address, r.Networks)

		result := checkResult{Address: r.Address, Valid: ok}
		if err != nil {
			result.Error = err.Error()

			cmd.Log().Error().Err(err).Int("index", i).Msg("wrong argument")
		}

		if !ok {
			invalids++
		}

		if err := cmd.print(result); err != nil {
			return err
		}
	}

	if invalids > 0 {
		return InvalidAddressFoundError.Errorf("%d of %d", invalids, len(records))
	}

	return nil
}

func (cmd *CheckCommand) read() ([]byte, error) {
	if strings.TrimSpace(cmd.Input) == "-" {
		return io.ReadAll(cmd.In)
	}

	b, err := os.ReadFile(filepath.Clean(cmd.Input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	return b, nil
}
