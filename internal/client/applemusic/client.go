package applemusic

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"github.com/oshokin/applemusic-client/internal/config"
	"github.com/oshokin/applemusic-client/internal/cookiefile"
	"github.com/oshokin/applemusic-client/internal/logger"
	http_transport "github.com/oshokin/applemusic-client/internal/transport/http"
	"github.com/oshokin/applemusic-client/internal/utils"
)

// Client defines the interface for interacting with the Apple Music catalog.
type Client interface {
	// GetResource fetches one catalog resource and returns the first element of its data collection.
	GetResource(ctx context.Context, resourceType ResourceType, id string, query url.Values) (Resource, error)
	// GetSong fetches a song.
	GetSong(ctx context.Context, id string, options *SongOptions) (Resource, error)
	// GetMusicVideo fetches a music video.
	GetMusicVideo(ctx context.Context, id string) (Resource, error)
	// GetAlbum fetches an album.
	GetAlbum(ctx context.Context, id string, options *AlbumOptions) (Resource, error)
	// GetPlaylist fetches a playlist.
	GetPlaylist(ctx context.Context, id string, options *PlaylistOptions) (Resource, error)
	// GetWebPlayback fetches the playback manifest of a track.
	GetWebPlayback(ctx context.Context, trackID string) (WebPlayback, error)
	// GetLicense exchanges a Widevine challenge for a license.
	GetLicense(ctx context.Context, trackID, trackURI, challenge string) (string, error)
	// Storefront returns the storefront code used in catalog paths.
	Storefront() string
	// Language returns the language tag sent with every request.
	Language() string
}

// ClientImpl implements the Client interface.
// A ClientImpl is not meant for concurrent use; create one per goroutine.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// httpClient sends catalog, playback and license requests with the bearer token.
	httpClient *http.Client
	// storefront is the code used in catalog paths.
	storefront string
	// language is sent as the l query parameter and in the playback body.
	language string
}

// NewClient bootstraps a session: it loads the optional cookie file,
// scrapes the bearer token from the web player and returns a ready client.
func NewClient(ctx context.Context, cfg *config.Config) (*ClientImpl, error) {
	// Create a cookie jar shared by the bootstrap and the session clients.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	storefront := cfg.Storefront
	mediaUserToken := ""

	if cfg.CookiesPath != "" {
		storefront, mediaUserToken, err = loadCookies(ctx, jar, cfg.CookiesPath)
		if err != nil {
			return nil, err
		}
	}

	baseHeaders := buildBaseHeaders(cfg, mediaUserToken)
	bootstrapClient := newHTTPClient(cfg, jar, baseHeaders)

	token, err := scrapeBearerToken(ctx, bootstrapClient, cfg.HomepageURL)
	if err != nil {
		return nil, err
	}

	sessionHeaders := baseHeaders.Clone()
	sessionHeaders.Set(headerAuthorization, "Bearer "+token)

	logger.Debugf(ctx, "Catalog session ready, storefront: %s, language: %s", storefront, cfg.Language)

	return &ClientImpl{
		cfg:        cfg,
		httpClient: newHTTPClient(cfg, jar, sessionHeaders),
		storefront: storefront,
		language:   cfg.Language,
	}, nil
}

// loadCookies fills jar from the cookie file and returns the storefront and the media user token.
func loadCookies(ctx context.Context, jar http.CookieJar, path string) (string, string, error) {
	cookies, err := cookiefile.Load(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	cookiefile.AddToJar(jar, cookies)
	logger.Debugf(ctx, "Loaded %d cookies from %s", len(cookies), path)

	storefrontCookie := cookiefile.Find(cookies, storefrontCookieName)
	if storefrontCookie == nil || storefrontCookie.Value == "" {
		return "", "", fmt.Errorf("%w: cookie file %s has no %s cookie", ErrConfiguration, path, storefrontCookieName)
	}

	mediaUserToken := ""
	if cookie := cookiefile.Find(cookies, mediaUserTokenCookieName); cookie != nil {
		mediaUserToken = cookie.Value
	}

	return storefrontCookie.Value, mediaUserToken, nil
}

// buildBaseHeaders assembles the header set sent with every request.
func buildBaseHeaders(cfg *config.Config, mediaUserToken string) http.Header {
	headers := http.Header{}
	headers.Set(headerAccept, mimeJSON)
	headers.Set(headerAcceptLanguage, "en-US,en;q=0.5")
	headers.Set(headerOrigin, cfg.HomepageURL)
	headers.Set(headerMediaUserToken, mediaUserToken)
	headers.Set(headerRenewal, "true")
	headers.Set(headerDNT, "1")
	headers.Set(headerSecFetchDest, "empty")
	headers.Set(headerSecFetchMode, "cors")
	headers.Set(headerSecFetchSite, "same-site")

	return headers
}

// newHTTPClient builds an HTTP client that installs headers on every request.
func newHTTPClient(cfg *config.Config, jar http.CookieJar, headers http.Header) *http.Client {
	return &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewHeaderInjector(
				http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
				headers),
			utils.NewStaticUserAgentProvider("", http_transport.DefaultUserAgent)),
		Jar:       jar,
	}
}

// scrapeBearerToken fetches the homepage and its legacy script bundle and extracts the token.
func scrapeBearerToken(ctx context.Context, httpClient *http.Client, homepageURL string) (string, error) {
	logger.Debugf(ctx, "Fetching homepage %s", homepageURL)

	page, err := fetchText(ctx, httpClient, homepageURL)
	if err != nil {
		return "", err
	}

	scriptPath, err := ExtractIndexScriptPath(page)
	if err != nil {
		return "", err
	}

	scriptURL, err := url.JoinPath(homepageURL, scriptPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExtraction, err)
	}

	logger.Debugf(ctx, "Fetching index script %s", scriptURL)

	script, err := fetchText(ctx, httpClient, scriptURL)
	if err != nil {
		return "", err
	}

	return ExtractBearerToken(script)
}

func fetchText(ctx context.Context, httpClient *http.Client, route string) (string, error) {
	statusCode, body, err := doRequest(ctx, httpClient, http.MethodGet, route, nil, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExtraction, err)
	}

	if statusCode != http.StatusOK {
		return "", http_transport.NewResponseError(ErrTokenExtraction, route, statusCode, body)
	}

	return string(body), nil
}

// Storefront returns the storefront code used in catalog paths.
func (c *ClientImpl) Storefront() string {
	return c.storefront
}

// Language returns the language tag sent with every request.
func (c *ClientImpl) Language() string {
	return c.language
}

// GetResource fetches {catalog}/{storefront}/{type}/{id}.
// It succeeds only on HTTP 200 with a non-empty data collection whose first element has attributes.
func (c *ClientImpl) GetResource(
	ctx context.Context,
	resourceType ResourceType,
	id string,
	query url.Values,
) (Resource, error) {
	route, err := url.JoinPath(c.cfg.CatalogAPIURL, c.storefront, string(resourceType), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceFetch, err)
	}

	logger.Debugf(ctx, "Fetching %s %s", resourceType, id)

	statusCode, body, err := doRequest(ctx, c.httpClient, http.MethodGet, route, c.withLanguage(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceFetch, id, err)
	}

	if statusCode != http.StatusOK {
		return nil, http_transport.NewResponseError(ErrResourceFetch, id, statusCode, body)
	}

	var envelope catalogResponse
	if err = decodeJSON(body, &envelope); err != nil || len(envelope.Data) == 0 {
		return nil, http_transport.NewResponseError(ErrResourceFetch, id, statusCode, body)
	}

	resource, ok := envelope.Data[0].(map[string]any)
	if !ok || !isTruthy(resource["attributes"]) {
		return nil, http_transport.NewResponseError(ErrResourceFetch, id, statusCode, body)
	}

	return resource, nil
}

// GetSong fetches a song.
func (c *ClientImpl) GetSong(ctx context.Context, id string, options *SongOptions) (Resource, error) {
	if options == nil {
		options = &SongOptions{Extend: DefaultExtend, Include: DefaultInclude}
	}

	query := url.Values{}
	setIfNotEmpty(query, queryExtend, options.Extend)
	setIfNotEmpty(query, queryInclude, options.Include)

	return c.GetResource(ctx, ResourceTypeSongs, id, query)
}

// GetMusicVideo fetches a music video.
func (c *ClientImpl) GetMusicVideo(ctx context.Context, id string) (Resource, error) {
	return c.GetResource(ctx, ResourceTypeMusicVideos, id, nil)
}

// GetAlbum fetches an album.
func (c *ClientImpl) GetAlbum(ctx context.Context, id string, options *AlbumOptions) (Resource, error) {
	if options == nil {
		options = &AlbumOptions{Extend: DefaultExtend}
	}

	query := url.Values{}
	setIfNotEmpty(query, queryExtend, options.Extend)

	return c.GetResource(ctx, ResourceTypeAlbums, id, query)
}

// GetPlaylist fetches a playlist, sending the track limit as limit[tracks].
func (c *ClientImpl) GetPlaylist(ctx context.Context, id string, options *PlaylistOptions) (Resource, error) {
	if options == nil {
		options = &PlaylistOptions{Extend: DefaultExtend}
	}

	limit := options.LimitTracks
	if limit <= 0 {
		limit = DefaultPlaylistTrackLimit
	}

	query := url.Values{}
	query.Set(queryLimitTracks, strconv.Itoa(limit))
	setIfNotEmpty(query, queryExtend, options.Extend)

	return c.GetResource(ctx, ResourceTypePlaylists, id, query)
}

// GetWebPlayback fetches the playback manifest of a track.
// It succeeds only on HTTP 200 with a non-empty songList, whose first element is returned.
func (c *ClientImpl) GetWebPlayback(ctx context.Context, trackID string) (WebPlayback, error) {
	payload := &webPlaybackRequest{
		SalableAdamID: trackID,
		Language:      c.language,
	}

	logger.Debugf(ctx, "Fetching webplayback for %s", trackID)

	statusCode, body, err := doRequest(ctx, c.httpClient, http.MethodPost,
		c.cfg.WebPlaybackAPIURL, c.withLanguage(nil), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPlaybackManifest, trackID, err)
	}

	if statusCode != http.StatusOK {
		return nil, http_transport.NewResponseError(ErrPlaybackManifest, trackID, statusCode, body)
	}

	var envelope webPlaybackResponse
	if err = decodeJSON(body, &envelope); err != nil || len(envelope.SongList) == 0 {
		return nil, http_transport.NewResponseError(ErrPlaybackManifest, trackID, statusCode, body)
	}

	song, ok := envelope.SongList[0].(map[string]any)
	if !ok {
		return nil, http_transport.NewResponseError(ErrPlaybackManifest, trackID, statusCode, body)
	}

	return song, nil
}

// GetLicense exchanges a Widevine challenge for a license.
// It succeeds only on HTTP 200 with a non-empty license string.
func (c *ClientImpl) GetLicense(ctx context.Context, trackID, trackURI, challenge string) (string, error) {
	payload := &licenseRequest{
		Challenge:     challenge,
		KeySystem:     widevineKeySystem,
		URI:           trackURI,
		AdamID:        trackID,
		IsLibrary:     false,
		UserInitiated: true,
	}

	logger.Debugf(ctx, "Fetching license for %s", trackID)

	statusCode, body, err := doRequest(ctx, c.httpClient, http.MethodPost,
		c.cfg.LicenseAPIURL, c.withLanguage(nil), payload)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLicenseFetch, trackID, err)
	}

	if statusCode != http.StatusOK {
		return "", http_transport.NewResponseError(ErrLicenseFetch, trackID, statusCode, body)
	}

	var envelope licenseResponse
	if err = decodeJSON(body, &envelope); err != nil {
		return "", http_transport.NewResponseError(ErrLicenseFetch, trackID, statusCode, body)
	}

	license, ok := envelope.License.(string)
	if !ok || license == "" {
		return "", http_transport.NewResponseError(ErrLicenseFetch, trackID, statusCode, body)
	}

	return license, nil
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
