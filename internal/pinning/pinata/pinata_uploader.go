package pinata

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

const apiURL = "https://api.pinata.cloud/pinning/pinFileToIPFS"

const providerName = "pinata"

// Uploader implements port.ImageUploader using the Pinata pinFileToIPFS API.
type Uploader struct {
	jwt      string
	endpoint string
	client   *http.Client
}

// NewUploader creates a Pinata uploader from a provider config.
func NewUploader(cfg *config.PinataConfig) *Uploader {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return &Uploader{
		jwt:      cfg.JWT,
		endpoint: endpoint,
		client:   &http.Client{Timeout: config.Timeout(cfg.TimeoutSecs)},
	}
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinataOptions struct {
	CIDVersion int `json:"cidVersion"`
}

// apiResponse models the pinFileToIPFS success body.
type apiResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// apiError models the pinFileToIPFS error body.
type apiError struct {
	Error json.RawMessage `json:"error"`
}

func (u *Uploader) Upload(ctx context.Context, image domain.ImageCandidate) (string, error) {
	if u.jwt == "" {
		return "", pinning.NewProviderError(providerName, 0, pinning.ErrNotConfigured)
	}

	meta, err := json.Marshal(pinataMetadata{Name: image.Name})
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("marshaling metadata: %w", err))
	}
	opts, err := json.Marshal(pinataOptions{CIDVersion: 1})
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("marshaling options: %w", err))
	}

	body, contentType, err := pinning.BuildMultipartBody(image,
		pinning.FormField{Name: "pinataMetadata", Value: string(meta)},
		pinning.FormField{Name: "pinataOptions", Value: string(opts)},
	)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+u.jwt)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", pinning.NewProviderError(providerName, 0, fmt.Errorf("calling pinata API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, errors.New(errorMessage(resp, respBody)))
	}

	var out apiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, fmt.Errorf("unmarshaling response: %w", err))
	}
	if out.IpfsHash == "" {
		return "", pinning.NewProviderError(providerName, resp.StatusCode, errors.New("response missing IpfsHash"))
	}

	return pinning.PinataGatewayPrefix + out.IpfsHash, nil
}

// errorMessage prefers the provider's "error" field and falls back to the status text.
// Pinata returns either a string or an object with a "reason"/"details" pair.
func errorMessage(resp *http.Response, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Error) > 0 {
		var msg string
		if json.Unmarshal(apiErr.Error, &msg) == nil && msg != "" {
			return msg
		}
		var detail struct {
			Reason  string `json:"reason"`
			Details string `json:"details"`
		}
		if json.Unmarshal(apiErr.Error, &detail) == nil && detail.Reason != "" {
			if detail.Details != "" {
				return detail.Reason + ": " + detail.Details
			}
			return detail.Reason
		}
	}
	return http.StatusText(resp.StatusCode)
}
