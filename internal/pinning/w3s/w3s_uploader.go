package w3s

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"degenlauncher/internal/config"
	"degenlauncher/internal/domain"
	"degenlauncher/internal/pinning"
)

const apiURL = "https://api.web3.storage/upload"

const providerName = "web3.storage"

// Uploader implements port.ImageUploader using the web3.storage upload API.
type Uploader struct {
	token    string
	endpoint string
	client   *http.Client
}

// NewUploader creates a web3.storage uploader from a provider config.
func NewUploader(cfg *config.Web3StorageConfig) *Uploader {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return &Uploader{
		token:    cfg.Token,
		endpoint: endpoint,
		client:   &http.Client{Timeout: config.Timeout(cfg.TimeoutSecs)},
	}
}

type apiResponse struct {
	CID string `json:"cid"`
}

func (u *Uploader) Upload(ctx context.Context, image domain.ImageCandidate) (string, error) {
	if u.token == "" {
		return "", pinning.NewProviderError(providerName, 0, pinning.ErrNotConfigured)
	}

	body, contentType, err := pinning.BuildMultipartBody(image)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+u.token)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("calling web3.storage API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	var out apiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, fmt.Errorf("unmarshaling response: %w", err))
	}
	if out.CID == "" {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, errors.New("response missing cid"))
	}

	return "https://" + out.CID + pinning.W3SLinkSuffix, nil
}
