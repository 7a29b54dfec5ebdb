package config

import (
	"testing"
	"time"
)

func TestAuthConfig_TokenTTL(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    time.Duration
	}{
		{name: "configured value", minutes: 30, want: 30 * time.Minute},
		{name: "zero falls back to default", minutes: 0, want: 120 * time.Minute},
		{name: "negative falls back to default", minutes: -5, want: 120 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{TokenTTLMinutes: tt.minutes}
			if got := cfg.TokenTTL(); got != tt.want {
				t.Errorf("TokenTTL() = %v, want %v", got, tt.want)
			}
		})
	}
}
