package applemusic

// ResourceType names a catalog collection.
type ResourceType string

// Catalog collections served by GetResource.
const (
	ResourceTypeSongs       ResourceType = "songs"
	ResourceTypeMusicVideos ResourceType = "music-videos"
	ResourceTypeAlbums      ResourceType = "albums"
	ResourceTypePlaylists   ResourceType = "playlists"
)

// Resource is the first element of a catalog response's data collection, exactly as decoded.
type Resource map[string]any

// ID returns the resource id, or an empty string.
func (r Resource) ID() string {
	id, _ := r["id"].(string)

	return id
}

// Type returns the resource type, or an empty string.
func (r Resource) Type() string {
	resourceType, _ := r["type"].(string)

	return resourceType
}

// Attributes returns the attributes object, or nil.
func (r Resource) Attributes() map[string]any {
	attributes, _ := r["attributes"].(map[string]any)

	return attributes
}

// WebPlayback is the first element of a web-playback response's songList, exactly as decoded.
type WebPlayback map[string]any

// SongOptions tunes GetSong. A nil value requests extended asset URLs and lyrics.
// Empty fields are left out of the request.
type SongOptions struct {
	Extend  string
	Include string
}

// AlbumOptions tunes GetAlbum. A nil value requests extended asset URLs.
type AlbumOptions struct {
	Extend string
}

// PlaylistOptions tunes GetPlaylist. A nil value requests extended asset URLs
// and up to DefaultPlaylistTrackLimit tracks; a non-positive LimitTracks means the default.
type PlaylistOptions struct {
	LimitTracks int
	Extend      string
}

// webPlaybackRequest is the body of a web-playback request.
type webPlaybackRequest struct {
	SalableAdamID string `json:"salableAdamId"`
	Language      string `json:"language"`
}

// licenseRequest is the body of a license request.
type licenseRequest struct {
	Challenge     string `json:"challenge"`
	KeySystem     string `json:"key-system"`
	URI           string `json:"uri"`
	AdamID        string `json:"adamId"`
	IsLibrary     bool   `json:"isLibrary"`
	UserInitiated bool   `json:"user-initiated"`
}

// catalogResponse is the envelope of a catalog response.
type catalogResponse struct {
	Data []any `json:"data"`
}

// webPlaybackResponse is the envelope of a web-playback response.
type webPlaybackResponse struct {
	SongList []any `json:"songList"`
}

// licenseResponse is the envelope of a license response.
type licenseResponse struct {
	License any `json:"license"`
}
