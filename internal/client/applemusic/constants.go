package applemusic

const (
	// storefrontCookieName is the cookie that carries the account storefront.
	storefrontCookieName = "itua"
	// mediaUserTokenCookieName is the cookie that carries the account entitlement token.
	mediaUserTokenCookieName = "media-user-token"

	// widevineKeySystem is the only key system the license endpoint is asked for.
	widevineKeySystem = "com.widevine.alpha"
)

const (
	// DefaultExtend requests the extended asset URLs on songs, albums and playlists.
	DefaultExtend = "extendedAssetUrls"
	// DefaultInclude attaches lyrics relationships to songs.
	DefaultInclude = "lyrics"
	// DefaultPlaylistTrackLimit is the number of playlist tracks requested when no limit is given.
	DefaultPlaylistTrackLimit = 300
)

const (
	queryLanguage    = "l"
	queryExtend      = "extend"
	queryInclude     = "include"
	queryLimitTracks = "limit[tracks]"
)

const (
	headerAccept         = "Accept"
	headerAcceptLanguage = "Accept-Language"
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	headerDNT            = "DNT"
	headerMediaUserToken = "Media-User-Token"
	headerOrigin         = "Origin"
	headerRenewal        = "X-Apple-Renewal"
	headerSecFetchDest   = "Sec-Fetch-Dest"
	headerSecFetchMode   = "Sec-Fetch-Mode"
	headerSecFetchSite   = "Sec-Fetch-Site"

	mimeJSON = "application/json"
)
