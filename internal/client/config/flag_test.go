package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"cli"}, args...)
}

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, []string{"-a", "https://api.example.com", "-t", "30", "-d", "/tmp/att.db", "-l", "debug"})

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://api.example.com", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "/tmp/att.db", c.DatabasePath)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseFlags_PublicMarkersList(t *testing.T) {
	withArgs(t, []string{"-p", "login, signup ,create-user"})

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, []string{"login", "signup", "create-user"}, c.PublicPathMarkers)
}

func TestParseFlags_NoFlagsKeepDefaults(t *testing.T) {
	withArgs(t, nil)

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, []string{"public"}, c.PublicPathMarkers)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, []string{"-unknown", "x", "-a", "https://api.example.com"})

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "https://api.example.com", c.ServerBaseURL)
}
