package webhook_test

import (
	"testing"

	"legal-office-management/internal/webhook"
)

func TestValidateSignature(t *testing.T) {
	payload := []byte(`{"processo_oab_id":"p-1"}`)
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: "s3cret"})

	tests := []struct {
		name      string
		signature string
		wantErr   bool
	}{
		{name: "valid", signature: webhook.Sign("s3cret", payload)},
		{name: "wrong secret", signature: webhook.Sign("other", payload), wantErr: true},
		{name: "missing prefix", signature: "deadbeef", wantErr: true},
		{name: "bad hex", signature: "sha256=zz", wantErr: true},
		{name: "empty", signature: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignature(payload, tt.signature)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignature() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	t.Run("no secret configured", func(t *testing.T) {
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{})
		if err := v.ValidateSignature(payload, webhook.Sign("", payload)); err == nil {
			t.Error("expected an error without a configured secret")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{AllowedIPs: []string{"203.0.113.7", "10.0.0.0/8", "bogus/99"}})

	tests := []struct {
		ip      string
		wantErr bool
	}{
		{ip: "203.0.113.7"},
		{ip: "10.20.30.40"},
		{ip: "192.168.0.1", wantErr: true},
		{ip: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if err := v.ValidateIPAddress(tt.ip); (err != nil) != tt.wantErr {
				t.Errorf("ValidateIPAddress(%q) error = %v, wantErr %v", tt.ip, err, tt.wantErr)
			}
		})
	}

	open := webhook.NewSecurityValidator(webhook.SecurityConfig{})
	if err := open.ValidateIPAddress("192.168.0.1"); err != nil {
		t.Errorf("empty allow-list must accept every IP: %v", err)
	}
}

func TestCheckRateLimit(t *testing.T) {
	// 20/min gives a burst of 2.
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{RateLimitPerMin: 20})

	for i := 0; i < 2; i++ {
		if err := v.CheckRateLimit("1.1.1.1"); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
	}
	if err := v.CheckRateLimit("1.1.1.1"); err == nil {
		t.Error("expected the third immediate request to be limited")
	}
	if err := v.CheckRateLimit("2.2.2.2"); err != nil {
		t.Errorf("sources must be limited independently: %v", err)
	}
}
