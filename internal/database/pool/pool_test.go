package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/teamdesk/internal/database/config"
)

var poolEnvKeys = []string{
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
}

func TestLoadPoolConfigFromEnv(t *testing.T) {
	overrides := map[string]string{
		"DB_MAX_OPEN_CONNS":     "50",
		"DB_MAX_IDLE_CONNS":     "10",
		"DB_CONN_MAX_LIFETIME":  "1m",
		"DB_CONN_MAX_IDLE_TIME": "30s",
	}

	tests := []struct {
		name   string
		driver string
		env    map[string]string
		want   Config
	}{
		{name: "postgres defaults", driver: config.DriverPostgres, want: DefaultPoolConfig()},
		{
			name:   "postgres overrides",
			driver: config.DriverPostgres,
			env:    overrides,
			want:   Config{MaxOpenConns: 50, MaxIdleConns: 10, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: 30 * time.Second},
		},
		{
			name:   "postgres partial override",
			driver: config.DriverPostgres,
			env:    map[string]string{"DB_MAX_OPEN_CONNS": "8", "DB_CONN_MAX_LIFETIME": "never"},
			want:   Config{MaxOpenConns: 8, MaxIdleConns: 5, ConnMaxLifetime: 5 * time.Minute, ConnMaxIdleTime: 10 * time.Minute},
		},
		{name: "sqlite defaults", driver: config.DriverSQLite, want: SQLitePoolConfig()},
		{name: "sqlite ignores overrides", driver: config.DriverSQLite, env: overrides, want: SQLitePoolConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range poolEnvKeys {
				t.Setenv(k, tt.env[k])
			}
			assert.Equal(t, tt.want, LoadPoolConfigFromEnv(tt.driver))
		})
	}
}

func TestSQLitePoolConfig_SingleConnection(t *testing.T) {
	cfg := SQLitePoolConfig()
	assert.Equal(t, 1, cfg.MaxOpenConns)
	assert.Equal(t, 1, cfg.MaxIdleConns)
}

func TestSetupConnectionPool(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "postgres defaults", cfg: DefaultPoolConfig()},
		{name: "sqlite single connection", cfg: SQLitePoolConfig()},
		{name: "no idle connections", cfg: Config{MaxOpenConns: 4}},
		{name: "zero open", cfg: Config{MaxOpenConns: 0}, wantErr: "MaxOpenConns must be greater than 0"},
		{name: "negative idle", cfg: Config{MaxOpenConns: 4, MaxIdleConns: -1}, wantErr: "MaxIdleConns must be non-negative"},
		{name: "idle above open", cfg: Config{MaxOpenConns: 5, MaxIdleConns: 10}, wantErr: "MaxIdleConns (10) cannot be greater than MaxOpenConns (5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
			require.NoError(t, err)
			sqlDB, err := db.DB()
			require.NoError(t, err)
			t.Cleanup(func() { _ = sqlDB.Close() })

			err = SetupConnectionPool(db, tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				// A rejected config leaves the driver defaults in place.
				assert.Equal(t, 0, sqlDB.Stats().MaxOpenConnections)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.MaxOpenConns, sqlDB.Stats().MaxOpenConnections)
		})
	}
}
