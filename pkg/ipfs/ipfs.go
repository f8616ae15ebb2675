package ipfs

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/lukso-network/lsp-utils-go/pkg/shared"
	"github.com/multiformats/go-multihash"
)

const Scheme = "ipfs://"

// ValidateIPFSURL rewrites an ipfs://<cid>[/path] locator to
// <gateway>/<cid>[/path]. Locators with any other scheme are returned
// unchanged. An empty gateway falls back to shared.IPFSGatewayFromEnv.
func ValidateIPFSURL(url string, gateway string) (string, error) {
	trimmed := strings.TrimSpace(url)
	if !strings.HasPrefix(trimmed, Scheme) {
		return trimmed, nil
	}

	contentID, path, err := ParseIPFSURL(trimmed)
	if err != nil {
		return "", err
	}

	base := strings.TrimRight(strings.TrimSpace(gateway), "/")
	if base == "" {
		base = shared.IPFSGatewayFromEnv()
	}

	resolved := base + "/" + contentID.String()
	if path != "" {
		resolved += "/" + path
	}
	return resolved, nil
}

// ParseIPFSURL splits an ipfs:// locator into its CID and optional path.
func ParseIPFSURL(url string) (cid.Cid, string, error) {
	if !strings.HasPrefix(url, Scheme) {
		return cid.Undef, "", fmt.Errorf("locator %q is not an ipfs:// URL", url)
	}

	remainder := strings.TrimPrefix(url, Scheme)
	identifier := remainder
	path := ""
	if separatorIndex := strings.Index(remainder, "/"); separatorIndex >= 0 {
		identifier = remainder[:separatorIndex]
		path = strings.TrimLeft(remainder[separatorIndex+1:], "/")
	}

	parsed, err := cid.Decode(identifier)
	if err != nil {
		return cid.Undef, "", fmt.Errorf("invalid IPFS CID %q: %w", identifier, err)
	}
	return parsed, path, nil
}

// ContentCID returns the CIDv1 (raw codec, sha2-256 multihash) of content.
func ContentCID(content []byte) (string, error) {
	sum, err := multihash.Sum(content, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// ContentURL returns the ipfs:// locator of content.
func ContentURL(content []byte) (string, error) {
	contentID, err := ContentCID(content)
	if err != nil {
		return "", err
	}
	return Scheme + contentID, nil
}

// DocumentURL serializes document with shared.CanonicalJSON and returns
// the ipfs:// locator of the resulting bytes together with the bytes.
func DocumentURL(document any) (string, []byte, error) {
	content, err := shared.CanonicalJSON(document)
	if err != nil {
		return "", nil, err
	}
	url, err := ContentURL(content)
	if err != nil {
		return "", nil, err
	}
	return url, content, nil
}
