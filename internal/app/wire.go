package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"linky/internal/domain"
	"linky/internal/images"
	"linky/internal/links"
	"linky/internal/linktree"
	capturesvc "linky/internal/services/capture"
	"linky/internal/store"
)

// Wire bundles the stores, clients and services for the CLI.
type Wire struct {
	Fetcher  domain.ProfileFetcher
	Links    domain.LinkStore
	Images   domain.ImageStore
	Manifest domain.ManifestStore
	Capture  *capturesvc.Service
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: timeout}

	fetcher := linktree.NewClient(httpClient, cfg.UserAgent, cfg.MaxFetchSize)
	linkStore := links.NewFileStore(cfg.LinkDir)
	imageStore := images.NewStore(cfg.ImageDir, cfg.ImageWebRoot, httpClient, cfg.UserAgent, cfg.MaxFetchSize)
	manifestStore := store.NewManifestFileStore(cfg.LinkDir)

	svc := capturesvc.New(fetcher, linkStore, imageStore, manifestStore, log)

	return &Wire{
		Fetcher:  fetcher,
		Links:    linkStore,
		Images:   imageStore,
		Manifest: manifestStore,
		Capture:  svc,
		HTTP:     httpClient,
	}, nil
}
