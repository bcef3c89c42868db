package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AGENT_BASE_URL", "AGENT_TIMEOUT", "VOICE_AGENT_URL", "VOICE_CHUNK_MS", "VOICE_SAMPLE_RATE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Fatalf("unexpected server addr: %s", cfg.Server.Addr)
	}
	if cfg.Agent.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected agent base URL: %s", cfg.Agent.BaseURL)
	}
	if cfg.Agent.Timeout != 30*time.Second {
		t.Fatalf("unexpected agent timeout: %s", cfg.Agent.Timeout)
	}
	if cfg.Voice.URL != "ws://localhost:8000/ws/voice-agent" {
		t.Fatalf("unexpected voice URL: %s", cfg.Voice.URL)
	}
	if cfg.Voice.ChunkInterval != time.Second {
		t.Fatalf("unexpected chunk interval: %s", cfg.Voice.ChunkInterval)
	}
	if cfg.Voice.SampleRate != 16000 {
		t.Fatalf("unexpected sample rate: %d", cfg.Voice.SampleRate)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("AGENT_BASE_URL", "https://agent.example.com")
	t.Setenv("AGENT_TIMEOUT", "5")
	t.Setenv("VOICE_CHUNK_MS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected server addr: %s", cfg.Server.Addr)
	}
	if cfg.Agent.BaseURL != "https://agent.example.com" {
		t.Fatalf("unexpected agent base URL: %s", cfg.Agent.BaseURL)
	}
	if cfg.Agent.Timeout != 5*time.Second {
		t.Fatalf("unexpected agent timeout: %s", cfg.Agent.Timeout)
	}
	if cfg.Voice.ChunkInterval != 250*time.Millisecond {
		t.Fatalf("unexpected chunk interval: %s", cfg.Voice.ChunkInterval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("AGENT_TIMEOUT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid AGENT_TIMEOUT")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}
