package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"jan-server/services/imagegen-api/internal/client/gatewayclient"
	"jan-server/services/imagegen-api/internal/domain/stylepreset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List style presets",
	Long:  `List the style presets that can be passed to 'imagegen generate --preset'.`,
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().Bool("remote", false, "Fetch the catalogue from the gateway instead of the built-in list")
}

func runPresets(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")

	presets := lo.Map(stylepreset.All(), func(p stylepreset.Preset, _ int) gatewayclient.Preset {
		return gatewayclient.Preset{Key: p.Key, Label: p.Label, Phrase: p.Phrase}
	})
	if remote {
		client := newClient(cmd)
		defer client.Close()

		fetched, err := client.StylePresets(cmd.Context())
		if err != nil {
			return describeError(err)
		}
		presets = fetched
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-14s %s\n", stylepreset.None, "No preset")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-14s %-16s %s\n", p.Key, p.Label, p.Phrase)
	}
	return nil
}
