package cmds

import (
	"encoding/hex"

	"github.com/spikeekips/nemaddress/address"
	"github.com/spikeekips/nemaddress/util"
)

type InspectCommand struct {
	*BaseCommand
	Address string `arg:"" name:"address" help:"address"`
	Indent  bool   `name:"indent" help:"indent json output"`
}

func NewInspectCommand() InspectCommand {
	return InspectCommand{
		BaseCommand: NewBaseCommand("inspect"),
	}
}

func (cmd *InspectCommand) Run(version util.Version) error {
	if err := cmd.Initialize(cmd, version); err != nil {
		return err
	}

	ad, err := address.ParseAddress(cmd.Address)
	if err != nil {
		return err
	}

	cmd.Log().Debug().Object("address", ad).Msg("address parsed")

	return cmd.printJSON(struct {
		Address       string            `json:"address"`
		Pretty        string            `json:"pretty"`
		Network       address.NetworkID `json:"network"`
		NetworkByte   int               `json:"network_byte"`
		PublicKeyHash string            `json:"public_key_hash"`
		Checksum      string            `json:"checksum"`
	}{
		Address:       ad.String(),
		Pretty:        ad.Pretty(),
		Network:       ad.NetworkID(),
		NetworkByte:   int(ad.NetworkID().Byte()),
		PublicKeyHash: hex.EncodeToString(ad.PublicKeyHash()),
		Checksum:      hex.EncodeToString(ad.Checksum()),
	}, cmd.Indent)
}
