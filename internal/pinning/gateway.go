package pinning

import "strings"

const (
	PinataGatewayPrefix   = "https://gateway.pinata.cloud/ipfs/"
	IPFSIOGatewayPrefix   = "https://ipfs.io/ipfs/"
	FilebaseGatewayPrefix = "https://ipfs.filebase.io/ipfs/"
	IPFSScheme            = "ipfs://"
	W3SLinkSuffix         = ".ipfs.w3s.link"
)

// IsRecognizedURL reports whether url has the shape of a known IPFS gateway or
// an ipfs:// URI. It is a display hint only.
func IsRecognizedURL(url string) bool {
	return strings.HasPrefix(url, PinataGatewayPrefix) ||
		strings.HasPrefix(url, IPFSIOGatewayPrefix) ||
		strings.HasPrefix(url, FilebaseGatewayPrefix) ||
		strings.HasPrefix(url, IPFSScheme) ||
		strings.Contains(url, W3SLinkSuffix)
}

// DisplayURL rewrites ipfs:// URIs to the Pinata gateway so browsers can load them.
func DisplayURL(url string) string {
	if cid, ok := strings.CutPrefix(url, IPFSScheme); ok {
		return PinataGatewayPrefix + cid
	}
	return url
}
