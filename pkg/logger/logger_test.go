package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("WARN", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("verbose", &bytes.Buffer{}).GetLevel())
}

func TestWithFieldsWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New("info", &buf))
	defer SetLogger(nil)

	WithFields(logrus.Fields{"identity": "octocat", "kind": "stats"}).Info("fetched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "octocat", entry["identity"])
	assert.Equal(t, "stats", entry["kind"])
	assert.Equal(t, "fetched", entry["msg"])
}
