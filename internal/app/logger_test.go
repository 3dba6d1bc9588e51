package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	session := uuid.MustParse("0b6f2b6e-1f8e-4c3a-9a53-6f0c1f5c2d11")

	t.Run("json carries the session", func(t *testing.T) {
		// --- Arrange ---
		var buf bytes.Buffer
		logger := newLogger("info", "json", &buf, session)

		// --- Act ---
		logger.Info("Focus tree composed.", "tag", "GER")

		// --- Assert ---
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, session.String(), line["session"])
		assert.Equal(t, "GER", line["tag"])
	})

	testCases := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"DEBUG", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tc := range testCases {
		t.Run("level "+tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tc.level, "text", &buf, session)

			logger.Debug("debug line")
			logger.Info("info line")

			assert.Equal(t, tc.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tc.infoSeen, bytes.Contains(buf.Bytes(), []byte("info line")))
			if tc.infoSeen {
				assert.Contains(t, buf.String(), "session="+session.String())
			}
		})
	}
}
