package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ResolvedImageResponse represents the result of resolving an uploaded image.
type ResolvedImageResponse struct {
	URL        string `json:"url" example:"https://gateway.pinata.cloud/ipfs/bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy"`
	Source     string `json:"source" example:"pinata"`
	Recognized bool   `json:"recognized" example:"true"`
}

// DisplayURLResponse represents the display form of an image URL.
type DisplayURLResponse struct {
	URL        string `json:"url" example:"ipfs://bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy"`
	DisplayURL string `json:"display_url" example:"https://gateway.pinata.cloud/ipfs/bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy"`
	Recognized bool   `json:"recognized" example:"true"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string   `json:"status" example:"ok"`
	Providers []string `json:"providers,omitempty" example:"pinata,web3.storage,inline"`
}

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
