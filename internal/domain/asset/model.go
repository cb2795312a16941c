package asset

// AssetType classifies the media behind an asset.
type AssetType string

const (
	TypeImage AssetType = "image"
	TypeVideo AssetType = "video"
	TypeAudio AssetType = "audio"
)

// Asset is a media candidate that can illustrate a scene.
type Asset struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail"`
	Type      AssetType `json:"type"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author,omitempty"`
	Source    string    `json:"source,omitempty"`
}
