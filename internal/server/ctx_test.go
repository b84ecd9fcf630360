package server

import (
	"testing"

	"github.com/evergreenlab/plantmap/internal/config"
)

func TestNewServerContextDefaultsUploadSize(t *testing.T) {
	ctx := NewServerContext(&config.Config{})

	if ctx.Config.MaxUploadSize != defaultMaxUpload {
		t.Fatalf("got max upload %d, want default %d", ctx.Config.MaxUploadSize, defaultMaxUpload)
	}
}

func TestNewServerContextKeepsConfiguredUploadSize(t *testing.T) {
	ctx := NewServerContext(&config.Config{MaxUploadSize: 1024})

	if ctx.Config.MaxUploadSize != 1024 {
		t.Fatalf("got max upload %d, want 1024", ctx.Config.MaxUploadSize)
	}
}
