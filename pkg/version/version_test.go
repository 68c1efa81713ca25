package version_test

import (
	"encoding/json"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-weather/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	info := version.Get("weather-agent")
	assert.Equal("weather-agent", info.Name)
	assert.NotEmpty(info.Version)
	assert.NotEmpty(info.Compiler)
	assert.Contains(info.Platform, "/")
	assert.Equal(info.Version, version.Version())
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	tag := version.GitTag
	t.Cleanup(func() { version.GitTag = tag })

	version.GitTag = "v1.2.3"
	assert.Equal("v1.2.3", version.Version())

	var info version.Info
	assert.NoError(json.Unmarshal(version.JSON("weather-agent"), &info))
	assert.Equal("v1.2.3", info.Tag)
	assert.Equal("v1.2.3", info.Version)
}
