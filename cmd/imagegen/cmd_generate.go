package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"jan-server/services/imagegen-api/internal/client/gatewayclient"
	"jan-server/services/imagegen-api/internal/domain/stylepreset"
)

const defaultTimeout = 3 * time.Minute

var errPromptRequired = errors.New("please enter a prompt")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an image",
	Long: `Compose the prompt with an optional style preset and request one image
from the gateway. Options left empty are filled in by the server.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("prompt", "p", "", "Image description")
	generateCmd.Flags().String("preset", stylepreset.None, "Style preset key (see 'imagegen presets')")
	generateCmd.Flags().String("size", "", "Image size: 1024x1024, 1792x1024 or 1024x1792")
	generateCmd.Flags().String("style", "", "Image style: vivid or natural")
	generateCmd.Flags().String("quality", "", "Image quality: standard or hd")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt, _ := cmd.Flags().GetString("prompt")
	preset, _ := cmd.Flags().GetString("preset")
	size, _ := cmd.Flags().GetString("size")
	style, _ := cmd.Flags().GetString("style")
	quality, _ := cmd.Flags().GetString("quality")

	req, err := buildRequest(prompt, preset, size, style, quality)
	if err != nil {
		return err
	}

	client := newClient(cmd)
	defer client.Close()

	stopSpinner := startSpinner("Generating image...")
	result, err := client.Generate(cmd.Context(), req)
	stopSpinner(lo.Ternary(err == nil, "Generated", "Failed"))

	if err != nil {
		return describeError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.URL)
	if result.RevisedPrompt != "" {
		fmt.Fprintf(out, "Revised prompt: %s\n", result.RevisedPrompt)
	}
	return nil
}

// buildRequest rejects blank prompts before any network call and appends the preset phrase.
func buildRequest(prompt, preset, size, style, quality string) (gatewayclient.Request, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return gatewayclient.Request{}, errPromptRequired
	}
	if preset != "" && preset != stylepreset.None {
		if _, ok := stylepreset.Lookup(preset); !ok {
			return gatewayclient.Request{}, fmt.Errorf("unknown preset %q, valid presets: %s", preset, strings.Join(stylepreset.Keys(), ", "))
		}
	}
	return gatewayclient.Request{
		Prompt:  stylepreset.Compose(prompt, preset),
		Size:    strings.TrimSpace(size),
		Style:   strings.TrimSpace(style),
		Quality: strings.TrimSpace(quality),
	}, nil
}

func describeError(err error) error {
	var apiErr *gatewayclient.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if apiErr.Details != "" {
			msg = fmt.Sprintf("%s: %s", msg, apiErr.Details)
		}
		if apiErr.RequestID != "" {
			msg = fmt.Sprintf("%s (request %s)", msg, apiErr.RequestID)
		}
		return errors.New(msg)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timed out waiting for the gateway: %w", err)
	}
	return err
}

func newClient(cmd *cobra.Command) *gatewayclient.Client {
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return gatewayclient.New(server, timeout)
}

func defaultServer() string {
	if server := strings.TrimSpace(os.Getenv("IMAGEGEN_SERVER")); server != "" {
		return server
	}
	return gatewayclient.DefaultBaseURL
}

// startSpinner renders an indeterminate spinner on stderr until the returned func is called.
func startSpinner(description string) func(done string) {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(10),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)

	stop := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func(done string) {
		close(stop)
		<-stopped
		bar.Describe(done)
		_ = bar.Close()
	}
}
