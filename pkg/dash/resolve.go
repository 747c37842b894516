package dash

import "fmt"

// SecuritySections maps --section values to security sub-paths.
var SecuritySections = map[string]string{
	"waf":    "security/waf",
	"events": "security/events",
	"ddos":   "security/ddos",
	"bots":   "security/bots",
}

// SecurityPath returns the sub-path for a security section.
// A nil or unrecognised section falls back to the security overview.
func SecurityPath(section *string) string {
	if section != nil {
		if p, ok := SecuritySections[*section]; ok {
			return p
		}
	}
	return "security"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Resolve returns the dashboard URL for c.
//
// Resolve has no side effects. It panics if c.Kind is not one of the kinds
// declared in this package.
func Resolve(c Command) string {
	zone := deref(c.Zone)

	switch c.Kind {
	case DNS:
		return zoneURL(zone, "dns")
	case Analytics:
		return zoneURL(zone, "analytics")
	case Security:
		return zoneURL(zone, SecurityPath(c.Section))
	case SSL:
		return zoneURL(zone, "ssl-tls")
	case Caching:
		return zoneURL(zone, "caching")
	case Rules:
		return zoneURL(zone, "rules")
	case Speed:
		return zoneURL(zone, "speed")
	case Email:
		return zoneURL(zone, "email")
	case Spectrum:
		return zoneURL(zone, "spectrum")
	case Network:
		return zoneURL(zone, "network")
	case Traffic:
		return zoneURL(zone, "traffic")
	case Scrape:
		return zoneURL(zone, "content-protection")
	case Zaraz:
		return zoneURL(zone, "zaraz")
	case Zone:
		return zoneURL(zone, "")

	case Logs:
		if c.Zone != nil {
			return zoneURL(zone, "analytics/logs")
		}
		return accountURL("logs")

	case Workers:
		return accountResourceURL(c.Name, "workers-and-pages", "workers/services/view/")
	case Pages:
		return accountResourceURL(c.Name, "workers-and-pages", "pages/view/")
	case R2:
		return accountResourceURL(c.Name, "r2", "r2/default/buckets/")
	case D1:
		return accountResourceURL(c.Name, "workers/d1", "workers/d1/databases/")
	case KV:
		return accountResourceURL(c.Name, "workers/kv", "workers/kv/namespaces/")

	case ZeroTrust, Access:
		return accountURL("access")
	case Tunnels:
		return accountURL("access/tunnels")
	case Stream:
		return accountURL("stream")
	case Images:
		return accountURL("images")
	case Queues:
		return accountURL("queues")
	case AI:
		return accountURL("ai")
	case Vectorize:
		return accountURL("vectorize")
	case Hyperdrive:
		return accountURL("hyperdrive")
	case DurableObjects:
		return accountURL("workers/durable-objects")
	case Account:
		return accountURL("")
	case Billing:
		return accountURL("billing")
	case AuditLog:
		return accountURL("audit-log")
	case Registrar:
		return accountURL("domains")
	case Turnstile:
		return accountURL("turnstile")
	case WebAnalytics:
		return accountURL("web-analytics")

	// API tokens live under the user profile, not the account.
	case APITokens:
		return Base + "/profile/api-tokens"
	case Dashboard:
		return Base
	}

	panic(fmt.Sprintf("dash: no destination for %s", c.Kind))
}
