package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "imagegen",
	Short: "Image generation CLI - Generate images through the imagegen-api gateway",
	Long: `imagegen sends text prompts to the imagegen-api gateway and prints the
resulting image URL.

Examples:
  # Generate with defaults (1024x1024, vivid, standard)
  imagegen generate --prompt "a lighthouse at dusk"

  # Apply a style preset and options
  imagegen generate -p "a lighthouse at dusk" --preset neon --size 1792x1024 --quality hd

  # List style presets
  imagegen presets
  imagegen presets --remote`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(presetsCmd)

	rootCmd.PersistentFlags().String("server", defaultServer(), "Gateway base URL (env IMAGEGEN_SERVER)")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "Request timeout")
}
