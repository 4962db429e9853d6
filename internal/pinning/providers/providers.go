package providers

import (
	"fmt"

	"degenlauncher/internal/config"
	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning/filebase"
	"degenlauncher/internal/pinning/pinata"
	"degenlauncher/internal/pinning/w3s"
	"degenlauncher/internal/port"
)

// Remote builds the remote uploaders in priority order: Pinata, web3.storage,
// then Filebase when it is configured. Pinata and web3.storage are always
// present; without a credential they fail at upload time and the chain moves on.
func Remote(cfg *config.PinningConfig) ([]port.ImageUploader, []domain.UploadSource, error) {
	uploaders := []port.ImageUploader{
		pinata.NewUploader(&cfg.Pinata),
		w3s.NewUploader(&cfg.Web3Storage),
	}
	names := []domain.UploadSource{domain.SourcePinata, domain.SourceWeb3Storage}

	if cfg.Filebase.Enabled() {
		fb, err := filebase.NewUploader(&cfg.Filebase)
		if err != nil {
			return nil, nil, fmt.Errorf("creating filebase uploader: %w", err)
		}
		uploaders = append(uploaders, fb)
		names = append(names, domain.SourceFilebase)
	}

	return uploaders, names, nil
}
