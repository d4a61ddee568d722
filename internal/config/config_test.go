package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadMySQL(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV": "test", "APP_PORT": "8080",
		"DB_USER": "root", "DB_HOST": "db", "DB_PORT": "3306", "DB_NAME": "netflix",
		"STORE_DRIVER": "",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverMySQL || cfg.DBHost != "db" || cfg.Port != "8080" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadMongoDoesNotRequireDBVars(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV": "test", "APP_PORT": "8080", "STORE_DRIVER": "Mongo",
		"DB_USER": "", "DB_HOST": "", "DB_PORT": "", "DB_NAME": "",
		"MONGO_COLLECTION": "titles",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoreDriver != DriverMongo || cfg.MongoCollection != "titles" || cfg.MongoDB != "netflix" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadReportsAllMissing(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV": "", "APP_PORT": "", "STORE_DRIVER": "mysql",
		"DB_USER": "", "DB_HOST": "", "DB_PORT": "", "DB_NAME": "",
	})
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, k := range []string{"APP_ENV", "APP_PORT", "DB_USER", "DB_HOST", "DB_PORT", "DB_NAME"} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("error %q does not mention %s", err, k)
		}
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	setEnv(t, map[string]string{"APP_ENV": "test", "APP_PORT": "1", "STORE_DRIVER": "postgres"})
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	setEnv(t, map[string]string{
		"RATE_LIMIT_CAPACITY":        "0",
		"RATE_LIMIT_REFILL_INTERVAL": "2s",
		"RATE_LIMIT_TTL":             "1s",
		"RATE_LIMIT_BURST":           "",
	})
	c := LoadRateLimitConfig()
	if c.Capacity != 1 {
		t.Errorf("Capacity = %d, want 1", c.Capacity)
	}
	if c.TTL != 10*time.Second {
		t.Errorf("TTL = %s, want 10s", c.TTL)
	}
}

func TestLoadCacheConfig(t *testing.T) {
	setEnv(t, map[string]string{"CACHE_METHODS": " get, head ,", "CACHE_TTL": "bogus", "CACHE_ENABLED": "off"})
	c := LoadCacheConfig()
	if c.Enabled {
		t.Error("expected cache disabled")
	}
	if !c.Methods["GET"] || !c.Methods["HEAD"] || len(c.Methods) != 2 {
		t.Errorf("Methods = %v", c.Methods)
	}
	if c.TTL != 30*time.Second {
		t.Errorf("TTL = %s, want default 30s", c.TTL)
	}
}

func TestLoadAuditConfigPrefersRabbitURL(t *testing.T) {
	setEnv(t, map[string]string{"RABBITMQ_URL": "amqp://a/", "AMQP_URL": "amqp://b/", "AUDIT_ENABLED": "yes"})
	c := LoadAuditConfig()
	if !c.Enabled || c.URL != "amqp://a/" || c.Queue != "movies.queried" {
		t.Fatalf("unexpected audit config: %+v", c)
	}
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client, err := NewRedisClient(context.Background(), RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	if _, err := NewRedisClient(context.Background(), RedisConfig{Addr: addr}); err == nil {
		t.Fatal("expected ping failure after server shutdown")
	}
}
