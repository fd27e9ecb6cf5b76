package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigFromEnv(t *testing.T) {
	keys := []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	}

	tests := []struct {
		name string
		env  map[string]string
		want ServerConfig
	}{
		{
			name: "defaults",
			want: ServerConfig{
				Port:            ":8080",
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    10 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: 15 * time.Second,
			},
		},
		{
			name: "shutdown timeout override",
			env:  map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "45s", "SERVER_HOST": "127.0.0.1", "SERVER_PORT": "9000"},
			want: ServerConfig{
				Host:            "127.0.0.1",
				Port:            "9000",
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    10 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: 45 * time.Second,
			},
		},
		{
			name: "unparsable timeouts keep defaults",
			env:  map[string]string{"SERVER_READ_TIMEOUT": "soon", "SERVER_SHUTDOWN_TIMEOUT": "15"},
			want: ServerConfig{
				Port:            ":8080",
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    10 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: 15 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range keys {
				t.Setenv(k, tt.env[k])
			}
			assert.Equal(t, tt.want, LoadServerConfigFromEnv())
		})
	}
}

func TestServerConfig_GetAddress(t *testing.T) {
	tests := []struct {
		host string
		port string
		want string
	}{
		{host: "", port: ":8080", want: ":8080"},
		{host: "", port: "8080", want: ":8080"},
		{host: "0.0.0.0", port: ":8080", want: "0.0.0.0:8080"},
		{host: "localhost", port: "9000", want: "localhost:9000"},
		{host: "::1", port: "8080", want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.host+"|"+tt.port, func(t *testing.T) {
			cfg := ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.want, cfg.GetAddress())
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	base := ServerConfig{
		Port:            ":8080",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "zero shutdown timeout closes immediately", mutate: func(c *ServerConfig) { c.ShutdownTimeout = 0 }},
		{name: "missing port", mutate: func(c *ServerConfig) { c.Port = "" }, wantErr: "SERVER_PORT"},
		{name: "bare colon", mutate: func(c *ServerConfig) { c.Port = ":" }, wantErr: "SERVER_PORT"},
		{name: "zero read timeout", mutate: func(c *ServerConfig) { c.ReadTimeout = 0 }, wantErr: "ReadTimeout"},
		{name: "zero write timeout", mutate: func(c *ServerConfig) { c.WriteTimeout = 0 }, wantErr: "WriteTimeout"},
		{name: "zero idle timeout", mutate: func(c *ServerConfig) { c.IdleTimeout = 0 }, wantErr: "IdleTimeout"},
		{name: "negative shutdown timeout", mutate: func(c *ServerConfig) { c.ShutdownTimeout = -time.Second }, wantErr: "ShutdownTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
