package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_PATH", "ADMIN_USER", "ADMIN_PASS", "KAFKA_BROKERS", "KAFKA_TOPIC_ORDERS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3001" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBPath != "store.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AdminUser != "admin" || cfg.AdminPass != "admin123" {
		t.Errorf("admin defaults = %q/%q", cfg.AdminUser, cfg.AdminPass)
	}
	if cfg.KafkaBrokers != nil {
		t.Errorf("KafkaBrokers = %v, want nil", cfg.KafkaBrokers)
	}
	if cfg.KafkaTopic != "storefront.orders" {
		t.Errorf("KafkaTopic = %q", cfg.KafkaTopic)
	}
	if !cfg.AdminCredentialsAreDefault() {
		t.Error("AdminCredentialsAreDefault() = false with defaults")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("ADMIN_USER", "ops")
	t.Setenv("ADMIN_PASS", "s3cret")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,,")
	t.Setenv("KAFKA_TOPIC_ORDERS", "orders.v2")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DBPath != "/tmp/other.db" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.KafkaBrokers, want) {
		t.Errorf("KafkaBrokers = %v, want %v", cfg.KafkaBrokers, want)
	}
	if cfg.KafkaTopic != "orders.v2" {
		t.Errorf("KafkaTopic = %q", cfg.KafkaTopic)
	}
	if cfg.AdminCredentialsAreDefault() {
		t.Error("AdminCredentialsAreDefault() = true with custom pair")
	}
}

func TestSplitAndTrim(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b ", []string{"a", "b"}},
		{",,", []string{}},
	}
	for _, tc := range cases {
		if got := splitAndTrim(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitAndTrim(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
