package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"degenlauncher/internal/config"
	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning"
	"degenlauncher/internal/pinning/inline"
	"degenlauncher/internal/pinning/providers"
	"degenlauncher/internal/service"
)

const maxConcurrentResolves = 4

type resolveOutcome struct {
	Path       string              `json:"path"`
	URL        string              `json:"url,omitempty"`
	Source     domain.UploadSource `json:"source,omitempty"`
	Recognized bool                `json:"recognized"`
	Error      string              `json:"error,omitempty"`
}

func newResolveCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		inlineOnly bool
		mediaType  string
	)

	cmd := &cobra.Command{
		Use:   "resolve <path> [<path>...]",
		Short: "Upload images and print the URL each one resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newImageService(cfg, inlineOnly)
			if err != nil {
				return err
			}

			outcomes := resolveAll(cmd.Context(), svc, args, mediaType, !inlineOnly)

			if *jsonOutput {
				err = writeJSON(cmd.OutOrStdout(), outcomes)
			} else {
				err = writeOutcomes(cmd.OutOrStdout(), outcomes)
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d images failed to resolve", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inlineOnly, "inline", false, "skip pinning providers and encode inline")
	cmd.Flags().StringVar(&mediaType, "type", "", "declared media type (detected from content when empty)")

	return cmd
}

func newImageService(cfg *config.Config, inlineOnly bool) (service.ImageService, error) {
	if inlineOnly {
		return service.NewImageService(nil, nil, inline.NewEncoder()), nil
	}
	remote, names, err := providers.Remote(&cfg.Pinning)
	if err != nil {
		return nil, fmt.Errorf("initializing pinning providers: %w", err)
	}
	return service.NewImageService(remote, names, inline.NewEncoder()), nil
}

// resolveAll resolves every path concurrently. Outcomes keep argument order and
// one failure does not stop the others.
func resolveAll(ctx context.Context, svc service.ImageService, paths []string, mediaType string, preferRemote bool) []resolveOutcome {
	outcomes := make([]resolveOutcome, len(paths))

	var g errgroup.Group
	g.SetLimit(maxConcurrentResolves)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			outcomes[i] = resolveOne(ctx, svc, path, mediaType, preferRemote)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func resolveOne(ctx context.Context, svc service.ImageService, path, mediaType string, preferRemote bool) resolveOutcome {
	out := resolveOutcome{Path: path}

	candidate, err := candidateFromFile(path, mediaType)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	result, err := svc.Resolve(ctx, service.ResolveInput{Image: candidate, PreferRemote: preferRemote})
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.URL = result.URL
	out.Source = result.Source
	out.Recognized = pinning.IsRecognizedURL(result.URL)
	return out
}

// candidateFromFile describes a file on disk. When mediaType is empty the type
// is sniffed from the file contents.
func candidateFromFile(path, mediaType string) (*domain.ImageCandidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	if mediaType == "" {
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, fmt.Errorf("detecting media type of %s: %w", path, err)
		}
		mediaType = mt.String()
	}

	return &domain.ImageCandidate{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Size:      info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}
