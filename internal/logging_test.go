package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/jetblue-fares/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		level logrus.Level
		json  bool
	}{
		{name: "defaults", cfg: config.LoggingConfig{}, level: logrus.InfoLevel},
		{name: "debug text", cfg: config.LoggingConfig{Level: "debug", Format: "text"}, level: logrus.DebugLevel},
		{name: "warn json", cfg: config.LoggingConfig{Level: "warn", Format: "json"}, level: logrus.WarnLevel, json: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := newLogger(tt.cfg, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.level, log.GetLevel())

			log.WithField("route", "JFK-MIA").Error("boom")
			if tt.json {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "boom", entry["msg"])
				assert.Equal(t, "JFK-MIA", entry["route"])
			} else {
				assert.Contains(t, buf.String(), `msg=boom`)
				assert.Contains(t, buf.String(), `route=JFK-MIA`)
			}
		})
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := newLogger(config.LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestInitLogging(t *testing.T) {
	log, err := InitLogging(config.LoggingConfig{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
}
