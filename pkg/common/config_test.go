package common

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	conf := NewDefaultConfig()
	assert.Nil(t, conf.Validate())
	assert.Equal(t, ParseModeStrict, conf.ParseMode)
}

func TestValidateRejectsUnknownParseMode(t *testing.T) {
	conf := NewDefaultConfig()
	conf.ParseMode = "lenient"
	assert.NotNil(t, conf.Validate())
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	conf := NewDefaultConfig()
	conf.LogLevel = "chatty"
	assert.NotNil(t, conf.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.yaml")
	data := []byte("parseMode: permissive\nlogLevel: debug\nhideTokens: true\n")
	assert.Nil(t, ioutil.WriteFile(path, data, 0644))

	conf := NewDefaultConfig()
	conf.LoadFromFile(path)

	assert.Equal(t, ParseModePermissive, conf.ParseMode)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.True(t, conf.HideTokens)
	assert.Nil(t, conf.Validate())
}

func TestLoadFromFileMissingFileLeavesDefaults(t *testing.T) {
	conf := NewDefaultConfig()
	conf.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Equal(t, ParseModeStrict, conf.ParseMode)
	assert.Equal(t, "info", conf.LogLevel)
}
