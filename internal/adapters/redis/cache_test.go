package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "relaygeo/internal/adapters/redis"
)

func TestCache_MissSetHitExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "relaygeo:relay_list_v2"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	body := []byte(`{"result":{"countries":[]}}`)
	if err := c.Set(ctx, "relaygeo:relay_list_v2", body, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx, "relaygeo:relay_list_v2")
	if err != nil || !ok || string(got) != string(body) {
		t.Fatalf("expected hit with body, got %q ok=%v err=%v", got, ok, err)
	}

	mr.FastForward(61 * time.Second)
	if _, ok, _ := c.Get(ctx, "relaygeo:relay_list_v2"); ok {
		t.Fatalf("expected entry to expire")
	}
}
