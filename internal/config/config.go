package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every tunable of the assistant client and the local
// simulator.
type Config struct {
	Server ServerConfig
	Agent  AgentConfig
	Voice  VoiceConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	agent, err := loadAgentConfig()
	if err != nil {
		return nil, err
	}

	voice, err := loadVoiceConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Agent: agent, Voice: voice}, nil
}

// ServerConfig describes the listen address used by the agent simulator.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Allow ":8000" or "127.0.0.1:8000" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AgentConfig describes how to reach the remote dialogue agent over HTTP.
type AgentConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadAgentConfig() (AgentConfig, error) {
	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("AGENT_TIMEOUT"); err != nil {
		return AgentConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AgentConfig{}, fmt.Errorf("invalid AGENT_TIMEOUT value: %d", *override)
		}
		timeoutSeconds = *override
	}

	return AgentConfig{
		BaseURL: getEnvOrDefault("AGENT_BASE_URL", "http://localhost:8000"),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// VoiceConfig describes the voice channel endpoint and capture parameters.
type VoiceConfig struct {
	URL           string
	ChunkInterval time.Duration
	SampleRate    int
	CaptureFile   string
	PlaybackDir   string
}

func loadVoiceConfig() (VoiceConfig, error) {
	chunkMillis := 1000
	if override, err := parseOptionalIntEnv("VOICE_CHUNK_MS"); err != nil {
		return VoiceConfig{}, err
	} else if override != nil {
		if *override < 20 {
			return VoiceConfig{}, fmt.Errorf("invalid VOICE_CHUNK_MS value: %d", *override)
		}
		chunkMillis = *override
	}

	sampleRate := 16000
	if override, err := parseOptionalIntEnv("VOICE_SAMPLE_RATE"); err != nil {
		return VoiceConfig{}, err
	} else if override != nil {
		if *override < 8000 {
			return VoiceConfig{}, fmt.Errorf("invalid VOICE_SAMPLE_RATE value: %d", *override)
		}
		sampleRate = *override
	}

	return VoiceConfig{
		URL:           getEnvOrDefault("VOICE_AGENT_URL", "ws://localhost:8000/ws/voice-agent"),
		ChunkInterval: time.Duration(chunkMillis) * time.Millisecond,
		SampleRate:    sampleRate,
		CaptureFile:   strings.TrimSpace(os.Getenv("VOICE_CAPTURE_FILE")),
		PlaybackDir:   getEnvOrDefault("VOICE_PLAYBACK_DIR", os.TempDir()),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
