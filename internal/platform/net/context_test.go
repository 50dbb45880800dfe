package net_test

import (
	"context"
	"testing"

	pnet "hirehub/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")

		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
	})

	t.Run("empty id returns same ctx and empty getter", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when the id is empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestWithUser(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithUser(base, "user-1")
	if got := pnet.UserID(ctx); got != "user-1" {
		t.Fatalf("UserID got %q want %q", got, "user-1")
	}

	if got := pnet.UserID(base); got != "" {
		t.Fatalf("UserID on bare ctx got %q want empty", got)
	}
	if ctx := pnet.WithUser(base, ""); ctx != base {
		t.Fatal("expected ctx to be unchanged when the user id is empty")
	}
}
