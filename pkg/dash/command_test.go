package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsCoverEveryKindOnce(t *testing.T) {
	seen := map[Kind]int{}
	for _, s := range Commands {
		seen[s.Kind]++
	}
	for k := Kind(0); k < kindCount; k++ {
		assert.Equal(t, 1, seen[k], "kind %d", k)
	}
	assert.Len(t, Commands, int(kindCount))
}

func TestCommandNamesAreUnique(t *testing.T) {
	names := map[string]string{}
	for _, s := range Commands {
		for _, n := range append([]string{s.Name}, s.Aliases...) {
			prev, dup := names[n]
			assert.False(t, dup, "%q is used by both %s and %s", n, prev, s.Name)
			names[n] = s.Name
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		give   string
		want   Kind
		wantOK bool
	}{
		{"dns", DNS, true},
		{"zero-trust", ZeroTrust, true},
		{"zt", ZeroTrust, true},
		{"do", DurableObjects, true},
		{"audit", AuditLog, true},
		{"tokens", APITokens, true},
		{"domains", Registrar, true},
		{"wa", WebAnalytics, true},
		{"home", Dashboard, true},
		{"dash", Dashboard, true},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			s, ok := Lookup(tt.give)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, s.Kind)
			}
		})
	}
}

func TestParse(t *testing.T) {
	dns, _ := Lookup("dns")
	workers, _ := Lookup("workers")
	logs, _ := Lookup("logs")
	security, _ := Lookup("security")
	billing, _ := Lookup("billing")

	tests := []struct {
		name    string
		spec    Spec
		args    []string
		section *string
		want    Command
		wantErr string
	}{
		{name: "zone", spec: dns, args: []string{"example.com"}, want: Command{Kind: DNS, Zone: str("example.com")}},
		{name: "missing zone", spec: dns, wantErr: "dns: missing required argument <zone>"},
		{name: "extra zone", spec: dns, args: []string{"a", "b"}, wantErr: `dns: unexpected argument "b"`},
		{name: "optional name absent", spec: workers, want: Command{Kind: Workers}},
		{name: "optional name", spec: workers, args: []string{"svc"}, want: Command{Kind: Workers, Name: str("svc")}},
		{name: "optional zone absent", spec: logs, want: Command{Kind: Logs}},
		{name: "optional zone", spec: logs, args: []string{"z"}, want: Command{Kind: Logs, Zone: str("z")}},
		{name: "section", spec: security, args: []string{"z"}, section: str("waf"), want: Command{Kind: Security, Zone: str("z"), Section: str("waf")}},
		{name: "section on wrong command", spec: dns, args: []string{"z"}, section: str("waf"), wantErr: "dns: --section is not supported"},
		{name: "no args", spec: billing, want: Command{Kind: Billing}},
		{name: "no args given one", spec: billing, args: []string{"x"}, wantErr: `billing: unexpected argument "x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec, tt.args, tt.section)
			if tt.wantErr != "" {
				var argErr *ArgError
				require.ErrorAs(t, err, &argErr)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgsUsage(t *testing.T) {
	dns, _ := Lookup("dns")
	r2, _ := Lookup("r2")
	ai, _ := Lookup("ai")
	assert.Equal(t, "<zone>", dns.ArgsUsage())
	assert.Equal(t, "[bucket]", r2.ArgsUsage())
	assert.Equal(t, "", ai.ArgsUsage())
}
