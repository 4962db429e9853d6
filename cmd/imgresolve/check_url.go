package main

import (
	"github.com/spf13/cobra"

	"degenlauncher/internal/pinning"
)

type urlCheck struct {
	URL        string `json:"url"`
	DisplayURL string `json:"display_url"`
	Recognized bool   `json:"recognized"`
}

func newCheckURLCmd(jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-url <url> [<url>...]",
		Short: "Report whether URLs point at a known IPFS gateway",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := make([]urlCheck, 0, len(args))
			for _, u := range args {
				checks = append(checks, urlCheck{
					URL:        u,
					DisplayURL: pinning.DisplayURL(u),
					Recognized: pinning.IsRecognizedURL(u),
				})
			}
			if *jsonOutput {
				return writeJSON(cmd.OutOrStdout(), checks)
			}
			return writeURLChecks(cmd.OutOrStdout(), checks)
		},
	}

	return cmd
}
