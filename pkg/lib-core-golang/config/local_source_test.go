package config

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, dir string, name string, content string) {
	if err := ioutil.WriteFile(path.Join(dir, name), []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestLocalSource_GetParameters(t *testing.T) {
	newConfigDir := func(t *testing.T) (string, func()) {
		dir, err := ioutil.TempDir("", "local-source-test")
		if err != nil {
			t.Fatal(err)
		}
		return dir, func() { os.RemoveAll(dir) }
	}

	t.Run("read params from default file", func(t *testing.T) {
		dir, cleanup := newConfigDir(t)
		defer cleanup()
		writeConfigFile(t, dir, "default.json", `{
			"log": {"logLevel": "info"},
			"server": {"port": 3000}
		}`)

		source, err := NewLocalSource(LocalOpts.WithDir(dir))
		if !assert.NoError(t, err) {
			return
		}

		logLevel := newStringParam("log/logLevel")
		port := newIntParam("server/port")
		values, err := source.GetParameters([]param{logLevel, port})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "info", values[param(logLevel)])
		assert.Equal(t, float64(3000), values[param(port)])
	})

	t.Run("env file overrides default", func(t *testing.T) {
		dir, cleanup := newConfigDir(t)
		defer cleanup()
		writeConfigFile(t, dir, "default.json", `{"log": {"logLevel": "info"}}`)
		writeConfigFile(t, dir, "test.json", `{"log": {"logLevel": "debug"}}`)

		source, err := NewLocalSource(
			LocalOpts.WithDir(dir),
			LocalOpts.WithAppEnv(AppEnv{Name: "test"}),
		)
		if !assert.NoError(t, err) {
			return
		}

		logLevel := newStringParam("log/logLevel")
		values, err := source.GetParameters([]param{logLevel})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "debug", values[param(logLevel)])
	})

	t.Run("env variable overrides files", func(t *testing.T) {
		dir, cleanup := newConfigDir(t)
		defer cleanup()
		writeConfigFile(t, dir, "default.json", `{"log": {"logLevel": "info"}}`)
		writeConfigFile(t, dir, "custom-environment-variables.json", `{"log": {"logLevel": "TEST_LOG_LEVEL"}}`)

		envValue := "level-" + faker.Word()
		os.Setenv("TEST_LOG_LEVEL", envValue)
		defer os.Unsetenv("TEST_LOG_LEVEL")

		source, err := NewLocalSource(LocalOpts.WithDir(dir))
		if !assert.NoError(t, err) {
			return
		}

		logLevel := newStringParam("log/logLevel")
		values, err := source.GetParameters([]param{logLevel})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, envValue, values[param(logLevel)])
	})

	t.Run("fail if no default file", func(t *testing.T) {
		dir, cleanup := newConfigDir(t)
		defer cleanup()

		source, err := NewLocalSource(LocalOpts.WithDir(dir))
		if !assert.NoError(t, err) {
			return
		}

		_, err = source.GetParameters([]param{newStringParam("log/logLevel")})
		assert.Error(t, err)
	})
}
