package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"logistics/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "0 */5 * * * *", cfg.DelayReportSchedule)
	assert.Equal(t, 100, cfg.DelayReportBatchSize)
	assert.InDelta(t, 20.0, cfg.RateLimitRPS, 0)
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("DB_NAME=from_file\nDELAY_REPORT_BATCH_SIZE=7\n"), 0o600))

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "from_env")
	t.Setenv("DELAY_REPORT_BATCH_SIZE", "")

	cfg, err := cmd.LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "from_env", cfg.DBName)
}

func TestConfig_ValidateServe(t *testing.T) {
	valid := cmd.Config{
		DBHost:               "localhost",
		DBName:               "logistics",
		JWTSecret:            "secret",
		RateLimitRPS:         10,
		DelayReportBatchSize: 50,
	}

	tests := map[string]struct {
		mutate  func(c *cmd.Config)
		wantErr string
	}{
		"valid":           {mutate: func(*cmd.Config) {}},
		"no db host":      {mutate: func(c *cmd.Config) { c.DBHost = "" }, wantErr: "DB_HOST"},
		"no db name":      {mutate: func(c *cmd.Config) { c.DBName = "" }, wantErr: "DB_NAME"},
		"no jwt secret":   {mutate: func(c *cmd.Config) { c.JWTSecret = "" }, wantErr: "JWT_SECRET"},
		"negative rate":   {mutate: func(c *cmd.Config) { c.RateLimitRPS = -1 }, wantErr: "RATE_LIMIT_RPS"},
		"zero batch size": {mutate: func(c *cmd.Config) { c.DelayReportBatchSize = 0 }, wantErr: "DELAY_REPORT_BATCH_SIZE"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.ValidateServe()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "app", DBPassword: "pw", DBName: "logistics", DBSslMode: "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=app password=pw dbname=logistics sslmode=disable", cfg.DSN())
}
