package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/antu41/ECommerceInventory/internal/core/domain"
)

func TestHasValidRefreshToken(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name   string
		hash   string
		expiry *time.Time
		want   bool
	}{
		{name: "live token", hash: "digest", expiry: &future, want: true},
		{name: "expired token", hash: "digest", expiry: &past, want: false},
		{name: "no token issued", hash: "", expiry: nil, want: false},
		{name: "hash without expiry", hash: "digest", expiry: nil, want: false},
		{name: "expiry without hash", hash: "", expiry: &future, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := domain.User{
				RefreshTokenHash:       tt.hash,
				RefreshTokenExpiryTime: tt.expiry,
			}
			assert.Equal(t, tt.want, u.HasValidRefreshToken(now))
		})
	}
}
