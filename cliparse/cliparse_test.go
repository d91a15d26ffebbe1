// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
	"time"

	"github.com/danielhkuo/daily-fortune/identity"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_SECRET", "test-secret")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("REAP_POLICY", "ttl")
	t.Setenv("RETENTION", "48h")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.AdminSecret != "test-secret" {
		t.Errorf("expected admin secret from env, got %q", cfg.AdminSecret)
	}
	if !cfg.TrustProxy {
		t.Error("expected TrustProxy to be true")
	}
	if cfg.ReapPolicy != ReapTTL || cfg.Retention != 48*time.Hour {
		t.Errorf("expected ttl/48h, got %s/%s", cfg.ReapPolicy, cfg.Retention)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.AdminSecret != "s1" {
		t.Errorf("CLI should override env: expected s1, got %q", cfg.AdminSecret)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-admin-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.Timezone != DefaultTimezone || cfg.Location == nil || cfg.Location.String() != DefaultTimezone {
		t.Errorf("expected %s location, got %v", DefaultTimezone, cfg.Location)
	}
	if cfg.ReapPolicy != ReapNone {
		t.Errorf("expected reap policy none, got %s", cfg.ReapPolicy)
	}
	if cfg.IdentityPolicy != identity.PolicyDevice {
		t.Errorf("expected identity policy device, got %s", cfg.IdentityPolicy)
	}
	if cfg.TrustProxy {
		t.Error("proxy trust should be off by default")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"missing database", []string{"-admin-secret", "s1"}},
		{"missing secret", []string{"-d", "file:test.db"}},
		{"bad database type", []string{"-d", "x", "-admin-secret", "s1", "-t", "mongo"}},
		{"bad timezone", []string{"-d", "x", "-admin-secret", "s1", "-tz", "Mars/Olympus"}},
		{"bad reap policy", []string{"-d", "x", "-admin-secret", "s1", "-reap", "weekly"}},
		{"bad retention", []string{"-d", "x", "-admin-secret", "s1", "-retention", "soon"}},
		{"negative retention", []string{"-d", "x", "-admin-secret", "s1", "-retention", "-1h"}},
		{"retention under a day", []string{"-d", "x", "-admin-secret", "s1", "-reap", "ttl", "-retention", "1h"}},
		{"retention just under a day", []string{"-d", "x", "-admin-secret", "s1", "-retention", "23h59m"}},
		{"bad identity policy", []string{"-d", "x", "-admin-secret", "s1", "-identity", "ip"}},
		{"bad trust proxy", []string{"-d", "x", "-admin-secret", "s1", "-trust-proxy", "maybe"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("ADMIN_SECRET", "")
			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseFlags_IdentityPolicies(t *testing.T) {
	for _, policy := range []string{identity.PolicyDevice, identity.PolicyDeviceOrNetwork} {
		t.Run(policy, func(t *testing.T) {
			cfg, err := ParseFlags([]string{"-d", "x", "-admin-secret", "s1", "-identity", policy})
			if err != nil {
				t.Fatal(err)
			}
			m, err := identity.NewMatcher(cfg.IdentityPolicy)
			if err != nil {
				t.Fatal(err)
			}
			if m.Name() != policy {
				t.Errorf("expected matcher %s, got %s", policy, m.Name())
			}
		})
	}
}

func TestParseFlags_MinRetention(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "x", "-admin-secret", "s1", "-reap", "ttl", "-retention", "24h"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Retention != MinRetention {
		t.Errorf("expected retention %s, got %s", MinRetention, cfg.Retention)
	}
}
