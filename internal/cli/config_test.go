package cli

import (
	"context"
	"testing"

	"github.com/diagramlab/stencil/pkg/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Addr != ":8421" {
		t.Errorf("Server.Addr = %q, want :8421", cfg.Server.Addr)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want file", cfg.Store.Backend)
	}
}

func TestNewStoreMemory(t *testing.T) {
	s, err := newStore(context.Background(), StoreConfig{Backend: "memory"})
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*store.MemoryStore); !ok {
		t.Errorf("backend = %T, want *store.MemoryStore", s)
	}
}

func TestNewStoreFileWithDir(t *testing.T) {
	s, err := newStore(context.Background(), StoreConfig{Backend: "file", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*store.FileStore); !ok {
		t.Errorf("backend = %T, want *store.FileStore", s)
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	_, err := newStore(context.Background(), StoreConfig{Backend: "etcd"})
	if err == nil {
		t.Fatal("unknown backend accepted")
	}
}
