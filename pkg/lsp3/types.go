package lsp3

import "github.com/lukso-network/lsp-utils-go/pkg/lsp2"

// ProfileKeyName is the ERC725Y schema name of the profile metadata key.
const ProfileKeyName = "LSP3Profile"

// ProfileKey is keccak256("LSP3Profile").
var ProfileKey = lsp2.GenerateSingletonKey(ProfileKeyName)

// ProfileMetadataJSON is the document hosted at the profile metadata URL.
type ProfileMetadataJSON struct {
	LSP3Profile Profile `json:"LSP3Profile"`
}

type Profile struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Links           []Link   `json:"links,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Avatar          []Asset  `json:"avatar,omitempty"`
	ProfileImage    []Image  `json:"profileImage,omitempty"`
	BackgroundImage []Image  `json:"backgroundImage,omitempty"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Verification struct {
	Method string `json:"method"`
	Data   string `json:"data"`
}

type Image struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	URL          string       `json:"url"`
	Verification Verification `json:"verification"`
}

type Asset struct {
	URL          string       `json:"url"`
	FileType     string       `json:"fileType"`
	Verification Verification `json:"verification"`
}
