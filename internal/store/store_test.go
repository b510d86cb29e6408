package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/iiskills/mpa/internal/config"
)

func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: is per connection.
	db.SetMaxOpenConns(1)
	s, err := NewSQLStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestFileStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("MPA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MPA_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	prefix := "mpa-test:" + t.Name() + ":"
	s := NewRedisStore(client, prefix)
	t.Cleanup(func() {
		ctx := context.Background()
		for _, k := range []string{"a", "b", KeyUserName, KeyGender, KeyLanguage, KeyRegisteredUser} {
			client.Del(ctx, prefix+k)
		}
		s.Close()
	})
	return s
}

func drivers() map[string]func(*testing.T) Settings {
	return map[string]func(*testing.T) Settings{
		"memory":        func(*testing.T) Settings { return NewMemoryStore() },
		"sqlite-mattn":  func(t *testing.T) Settings { return newTestSQLStore(t) },
		"sqlite-file":   func(t *testing.T) Settings { return newTestFileStore(t) },
		"redis":         func(t *testing.T) Settings { return newTestRedisStore(t) },
	}
}

func TestSettingsSemantics(t *testing.T) {
	ctx := context.Background()
	for name, open := range drivers() {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			if _, ok, err := s.Get(ctx, "a"); err != nil || ok {
				t.Fatalf("missing key: ok=%v err=%v", ok, err)
			}
			if err := s.Set(ctx, "a", "1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "a", "2"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if err := s.Set(ctx, "b", ""); err != nil {
				t.Fatalf("set empty: %v", err)
			}

			v, ok, err := s.Get(ctx, "a")
			if err != nil || !ok || v != "2" {
				t.Fatalf("get a = %q, %v, %v", v, ok, err)
			}
			v, ok, err = s.Get(ctx, "b")
			if err != nil || !ok || v != "" {
				t.Fatalf("empty value should still be present: %q, %v, %v", v, ok, err)
			}

			if err := s.Delete(ctx, "a"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := s.Delete(ctx, "a"); err != nil {
				t.Fatalf("delete missing key: %v", err)
			}
			if _, ok, _ := s.Get(ctx, "a"); ok {
				t.Fatal("deleted key still present")
			}
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, open := range drivers() {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			empty, err := LoadProfile(ctx, s)
			if err != nil {
				t.Fatalf("load empty: %v", err)
			}
			if empty != (Profile{}) {
				t.Fatalf("expected empty profile, got %+v", empty)
			}

			want := Profile{UserName: "Jarvis", Gender: "female", Language: "ta", RegisteredUser: "Priya"}
			if err := SaveProfile(ctx, s, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := LoadProfile(ctx, s)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got != want {
				t.Fatalf("profile = %+v, want %+v", got, want)
			}

			want.RegisteredUser = ""
			if err := SaveProfile(ctx, s, want); err != nil {
				t.Fatalf("save reset: %v", err)
			}
			if _, ok, _ := s.Get(ctx, KeyRegisteredUser); ok {
				t.Fatal("cleared field should be deleted")
			}
		})
	}
}

func TestSQLiteFilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "mpa.db")

	s, err := Open(config.StoreConfig{Driver: config.DriverSQLite, Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, KeyUserName, "Jarvis"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(config.StoreConfig{Driver: config.DriverSQLite, Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyUserName)
	if err != nil || !ok || v != "Jarvis" {
		t.Fatalf("after reopen: %q, %v, %v", v, ok, err)
	}
}

func TestOpenDrivers(t *testing.T) {
	s, err := Open(config.StoreConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected *MemoryStore, got %T", s)
	}

	s, err = Open(config.StoreConfig{Driver: config.DriverRedis, RedisAddr: "127.0.0.1:1", KeyPrefix: "x:"})
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	if _, ok := s.(*RedisStore); !ok {
		t.Fatalf("expected *RedisStore, got %T", s)
	}
	s.Close()

	if _, err := Open(config.StoreConfig{Driver: "etcd"}); !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}
