package itunes

const (
	queryCountry  = "country"
	queryLanguage = "lang"

	headerStoreFront = "X-Apple-Store-Front"
	// storeFrontClientTag follows the storefront id in the store-front header.
	storeFrontClientTag = "t:music31"
)
