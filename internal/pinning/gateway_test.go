package pinning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"degenlauncher/internal/pinning"
)

func TestIsRecognizedURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://gateway.pinata.cloud/ipfs/bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi", true},
		{"https://bafybeigdyrzt.ipfs.w3s.link", true},
		{"ipfs://bafybeigdyrzt", true},
		{"https://ipfs.io/ipfs/QmHash", true},
		{"https://ipfs.filebase.io/ipfs/QmHash", true},
		{"https://example.com/logo.png", false},
		{"data:image/png;base64,AAAA", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, pinning.IsRecognizedURL(tt.url))
		})
	}
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/bafy123", pinning.DisplayURL("ipfs://bafy123"))
	assert.Equal(t, "https://bafy123.ipfs.w3s.link", pinning.DisplayURL("https://bafy123.ipfs.w3s.link"))
	assert.Equal(t, "https://example.com/a.png", pinning.DisplayURL("https://example.com/a.png"))
}
