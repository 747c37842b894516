package dash

import "fmt"

// Kind identifies a dashboard destination.
type Kind int

const (
	DNS Kind = iota
	Workers
	Pages
	R2
	D1
	KV
	Analytics
	Security
	SSL
	Caching
	Rules
	Speed
	Email
	Spectrum
	Network
	Traffic
	Scrape
	ZeroTrust
	Access
	Tunnels
	Stream
	Images
	Queues
	AI
	Vectorize
	Hyperdrive
	DurableObjects
	Account
	Billing
	AuditLog
	APITokens
	Registrar
	Turnstile
	Zaraz
	WebAnalytics
	Logs
	Zone
	Dashboard

	kindCount
)

func (k Kind) String() string {
	if s, ok := specFor(k); ok {
		return s.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape describes the positional argument a destination takes.
type Shape int

const (
	// NoArgs destinations take no arguments.
	NoArgs Shape = iota
	// ZoneArg destinations require a zone name.
	ZoneArg
	// OptionalZoneArg destinations take an optional zone name.
	OptionalZoneArg
	// OptionalNameArg destinations take an optional resource name.
	OptionalNameArg
)

// Command is a parsed destination. Nil fields were not supplied.
type Command struct {
	Kind Kind
	// Zone is the zone (domain) name for zone-scoped destinations.
	Zone *string
	// Name is the resource name for Workers, Pages, R2, D1 and KV.
	Name *string
	// Section selects a security sub-page. See SecuritySections.
	Section *string
}

// Spec describes how a destination is invoked from the command line.
type Spec struct {
	Kind    Kind
	Name    string
	Aliases []string
	Usage   string
	Shape   Shape
	// ArgName labels the positional argument in help output.
	ArgName string
	// HasSection is true when the destination accepts --section.
	HasSection bool
}

// ArgsUsage renders the positional argument for help output.
func (s Spec) ArgsUsage() string {
	switch s.Shape {
	case ZoneArg:
		return "<" + s.ArgName + ">"
	case OptionalZoneArg, OptionalNameArg:
		return "[" + s.ArgName + "]"
	}
	return ""
}

func zoneSpec(k Kind, name string, usage string) Spec {
	return Spec{Kind: k, Name: name, Usage: usage, Shape: ZoneArg, ArgName: "zone"}
}

func nameSpec(k Kind, name string, usage string, argName string) Spec {
	return Spec{Kind: k, Name: name, Usage: usage, Shape: OptionalNameArg, ArgName: argName}
}

func accountSpec(k Kind, name string, usage string, aliases ...string) Spec {
	return Spec{Kind: k, Name: name, Usage: usage, Aliases: aliases}
}

// Commands lists every destination in the order it is shown in help output.
var Commands = []Spec{
	zoneSpec(DNS, "dns", "Open DNS settings for a zone"),
	nameSpec(Workers, "workers", "Open Workers & Pages dashboard", "name"),
	nameSpec(Pages, "pages", "Open Pages dashboard", "name"),
	nameSpec(R2, "r2", "Open R2 object storage", "bucket"),
	nameSpec(D1, "d1", "Open D1 databases", "database"),
	nameSpec(KV, "kv", "Open KV namespaces", "namespace"),
	zoneSpec(Analytics, "analytics", "Open zone analytics"),
	{Kind: Security, Name: "security", Usage: "Open security settings (WAF, etc.)", Shape: ZoneArg, ArgName: "zone", HasSection: true},
	zoneSpec(SSL, "ssl", "Open SSL/TLS settings"),
	zoneSpec(Caching, "caching", "Open caching settings"),
	zoneSpec(Rules, "rules", "Open rules settings (redirects, transforms, etc.)"),
	zoneSpec(Speed, "speed", "Open speed/optimization settings"),
	zoneSpec(Email, "email", "Open email routing settings"),
	zoneSpec(Spectrum, "spectrum", "Open Spectrum settings"),
	zoneSpec(Network, "network", "Open network settings"),
	zoneSpec(Traffic, "traffic", "Open traffic settings (load balancing, health checks)"),
	zoneSpec(Scrape, "scrape", "Open scrape shield settings"),
	accountSpec(ZeroTrust, "zero-trust", "Open Zero Trust dashboard", "zt"),
	accountSpec(Access, "access", "Open Access settings"),
	accountSpec(Tunnels, "tunnels", "Open Cloudflare Tunnels"),
	accountSpec(Stream, "stream", "Open Cloudflare Stream"),
	accountSpec(Images, "images", "Open Cloudflare Images"),
	accountSpec(Queues, "queues", "Open Queues"),
	accountSpec(AI, "ai", "Open Workers AI"),
	accountSpec(Vectorize, "vectorize", "Open Vectorize"),
	accountSpec(Hyperdrive, "hyperdrive", "Open Hyperdrive"),
	accountSpec(DurableObjects, "durable-objects", "Open Durable Objects", "do"),
	accountSpec(Account, "account", "Open account settings"),
	accountSpec(Billing, "billing", "Open billing page"),
	accountSpec(AuditLog, "audit-log", "Open audit log", "audit"),
	accountSpec(APITokens, "api-tokens", "Open API tokens page", "tokens"),
	accountSpec(Registrar, "registrar", "Open domain registrar", "domains"),
	accountSpec(Turnstile, "turnstile", "Open Turnstile (CAPTCHA)"),
	zoneSpec(Zaraz, "zaraz", "Open Zaraz"),
	accountSpec(WebAnalytics, "web-analytics", "Open Web Analytics", "wa"),
	{Kind: Logs, Name: "logs", Usage: "Open Logs (Logpush)", Shape: OptionalZoneArg, ArgName: "zone"},
	zoneSpec(Zone, "zone", "Open zone overview"),
	accountSpec(Dashboard, "dash", "Open the main dashboard", "home"),
}

func specFor(k Kind) (Spec, bool) {
	for _, s := range Commands {
		if s.Kind == k {
			return s, true
		}
	}
	return Spec{}, false
}

// Lookup finds a destination by its name or one of its aliases.
func Lookup(name string) (Spec, bool) {
	for _, s := range Commands {
		if s.Name == name {
			return s, true
		}
		for _, a := range s.Aliases {
			if a == name {
				return s, true
			}
		}
	}
	return Spec{}, false
}

// Placeholder returns a command for s with a "<zone>" placeholder filled in
// where a zone is required. Optional arguments are left unset.
func Placeholder(s Spec) Command {
	cmd := Command{Kind: s.Kind}
	if s.Shape == ZoneArg {
		zone := "<zone>"
		cmd.Zone = &zone
	}
	return cmd
}
