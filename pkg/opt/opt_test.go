package opt_test

import (
	"errors"
	"testing"
	"time"

	// Packages
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.False(opts.Has("missing"))
	assert.Nil(opts.GetStream())
}

func TestApplyNil(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(nil, opt.SetString("key", "value"), nil)
	assert.NoError(err)
	assert.Equal("value", opts.GetString("key"))
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.AddString("key", "value1", " value2 "))
	assert.NoError(err)
	assert.Equal([]string{"value1", "value2"}, opts.GetStringArray("key"))
	assert.Equal("value1", opts.GetString("key"))
	assert.Equal([]string{"value1", " value2 "}, opts.Query("key")["key"])

	opts, err = opt.Apply(opt.AddString("key", "a"), opt.SetString("key", "b"))
	assert.NoError(err)
	assert.Equal([]string{"b"}, opts.GetStringArray("key"))
}

func TestNumberOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(
		opt.SetUint(opt.SeedKey, 42),
		opt.SetFloat64(opt.TemperatureKey, 0.7),
		opt.SetDuration(opt.KeepAliveKey, 5*time.Minute),
	)
	assert.NoError(err)
	assert.Equal(uint(42), opts.GetUint(opt.SeedKey))
	assert.InDelta(0.7, opts.GetFloat64(opt.TemperatureKey), 1e-9)
	assert.Equal(5*time.Minute, opts.GetDuration(opt.KeepAliveKey))
	assert.Equal(uint(0), opts.GetUint("missing"))
}

func TestBoolOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetBool("on", true), opt.SetBool("off", false))
	assert.NoError(err)
	assert.True(opts.GetBool("on"))
	assert.False(opts.GetBool("off"))
	assert.False(opts.GetBool("missing"))
	assert.True(opts.Has("off"))
}

func TestAnyOptions(t *testing.T) {
	assert := assert.New(t)
	tk := struct{ Name string }{"toolkit"}
	opts, err := opt.Apply(opt.SetAny(opt.ToolkitKey, tk), opt.AddAny(opt.ContentBlockKey, 1, 2), opt.AddAny(opt.ContentBlockKey, 3))
	assert.NoError(err)
	assert.Equal(tk, opts.Get(opt.ToolkitKey))
	assert.Equal([]int{1, 2, 3}, opts.Get(opt.ContentBlockKey))
	assert.True(opts.Has(opt.ToolkitKey))

	opts, err = opt.Apply(opt.SetAny(opt.ToolkitKey, tk), opt.SetAny(opt.ToolkitKey, nil))
	assert.NoError(err)
	assert.False(opts.Has(opt.ToolkitKey))
}

func TestStreamOption(t *testing.T) {
	assert := assert.New(t)
	var got string
	opts, err := opt.Apply(opt.WithStream(func(role, text string) {
		got = role + ":" + text
	}))
	assert.NoError(err)
	fn := opts.GetStream()
	if assert.NotNil(fn) {
		fn("assistant", "hello")
	}
	assert.Equal("assistant:hello", got)

	opts, err = opt.Apply(opt.WithStream(nil))
	assert.NoError(err)
	assert.Nil(opts.GetStream())
}

func TestErrorOption(t *testing.T) {
	assert := assert.New(t)
	want := errors.New("boom")
	_, err := opt.Apply(opt.SetString("a", "b"), opt.WithOpts(opt.NoOp(), opt.Error(want)))
	assert.ErrorIs(err, want)

	_, err = opt.Apply(opt.SetDuration(opt.KeepAliveKey, -time.Second))
	assert.Error(err)
}
