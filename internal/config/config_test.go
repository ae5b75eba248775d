package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Form.SuccessTTL != 5*time.Second {
		t.Fatalf("expected 5s success ttl, got %s", cfg.Form.SuccessTTL)
	}
	if !cfg.Form.RevalidateDependents {
		t.Fatalf("expected dependents revalidated by default")
	}
	if cfg.RendererTheme() != nil {
		t.Fatalf("expected no theme by default")
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formcheck.yaml")
	data := `
server:
  addr: 127.0.0.1:9000
  read_timeout: 1m30s
  csrf:
    enabled: true
form:
  success_ttl: 0s
  revalidate_dependents: false
logging:
  level: debug
theme:
  name: acme
  variant: dark
  tokens:
    brand: "#123456"
  assets:
    prefix: /themes/acme
    files:
      vanilla.stylesheet: form.css
  variants:
    dark:
      tokens:
        brand: "#000000"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || !cfg.Server.CSRF.Enabled {
		t.Fatalf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != 90*time.Second {
		t.Fatalf("expected typed read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.CSRF.CookieName != "_csrf" {
		t.Fatalf("expected default cookie name kept, got %q", cfg.Server.CSRF.CookieName)
	}
	if cfg.Server.ShutdownGrace != 10*time.Second {
		t.Fatalf("expected default grace kept, got %s", cfg.Server.ShutdownGrace)
	}
	if cfg.Form.SuccessTTL != 0 || cfg.Form.RevalidateDependents {
		t.Fatalf("form section not applied: %+v", cfg.Form)
	}
	if success := cfg.Success(); success.HideAfter != 0 || success.Message == "" {
		t.Fatalf("unexpected success %+v", success)
	}

	rt := cfg.RendererTheme()
	if rt == nil {
		t.Fatalf("expected renderer theme")
	}
	if rt.CSSVars["--brand"] != "#000000" {
		t.Fatalf("expected variant token, got %q", rt.CSSVars["--brand"])
	}
	if got := rt.AssetURL("vanilla.stylesheet"); got != "/themes/acme/form.css" {
		t.Fatalf("unexpected asset url %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]struct {
		data string
		want []string
	}{
		"negative grace and level": {
			data: "server:\n  shutdown_grace: -1s\nlogging:\n  level: loud\n",
			want: []string{"server.shutdown_grace", "logging.level"},
		},
		"empty addr": {
			data: "server:\n  addr: \"\"\n",
			want: []string{"server.addr is required"},
		},
		"undeclared variant": {
			data: "theme:\n  name: acme\n  variant: dark\n",
			want: []string{`theme.variant "dark" is not declared`},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), nil)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			for _, fragment := range tc.want {
				if !strings.Contains(err.Error(), fragment) {
					t.Fatalf("expected %q in %v", fragment, err)
				}
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for name, data := range map[string]string{
		"syntax":       "server: [unterminated",
		"bad duration": "form:\n  success_ttl: soon\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data), nil)
			if err == nil || errors.Is(err, ErrInvalid) {
				t.Fatalf("expected parse error, got %v", err)
			}
		})
	}
}
