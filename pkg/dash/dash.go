// Package dash maps dashboard destinations to deep-link URLs.
//
// Every URL is rooted at Base. Zone and account pages are reached through the
// dashboard's redirect query, which picks the account for the signed-in user:
//
//	https://dash.cloudflare.com/?to=/:account/example.com/dns
package dash

// Base is the dashboard origin.
const Base = "https://dash.cloudflare.com"

// redirectPrefix is prepended to every account and zone path.
const redirectPrefix = Base + "/?to=/:account"

// zoneURL builds a URL for a page belonging to a zone.
// An empty path points at the zone overview.
func zoneURL(zone string, path string) string {
	if path == "" {
		return redirectPrefix + "/" + zone
	}
	return redirectPrefix + "/" + zone + "/" + path
}

// accountURL builds a URL for an account-level page.
// An empty path points at the account home.
func accountURL(path string) string {
	if path == "" {
		return redirectPrefix
	}
	return redirectPrefix + "/" + path
}

// accountResourceURL returns the listing page when name is nil, otherwise
// the page for the named resource. Names are interpolated verbatim.
func accountResourceURL(name *string, listing string, resourcePrefix string) string {
	if name == nil {
		return accountURL(listing)
	}
	return accountURL(resourcePrefix + *name)
}
