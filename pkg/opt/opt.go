package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a request or message
type Opt func(*Options) error

// StreamFn is called with each chunk of text as it is received, with the
// role which generated the chunk ("assistant", "tool", etc)
type StreamFn func(role, text string)

// Options is a set of applied options
type Options struct {
	url.Values
	any map[string]any
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys
const (
	SystemPromptKey = "system"
	TemperatureKey  = "temperature"
	TopPKey         = "top_p"
	TopKKey         = "top_k"
	SeedKey         = "seed"
	MaxTokensKey    = "max_tokens"
	KeepAliveKey    = "keep_alive"
	ToolkitKey      = "toolkit"
	StreamKey       = "stream"
	ContentBlockKey = "content"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (Options, error) {
	opts := Options{Values: make(url.Values), any: make(map[string]any)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the string values for the given keys
func (o Options) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}

// Has returns true if the key exists, either as a string or arbitrary value
func (o Options) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.any[key]
	return ok
}

// GetString returns the trimmed value for key, or empty string if not set
func (o Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetStringArray returns all values for key, each trimmed
func (o Options) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.TrimSpace(v)
	}
	return result
}

// GetBool returns true if key is present and not explicitly false
func (o Options) GetBool(key string) bool {
	values, ok := o.Values[key]
	if !ok {
		return false
	}
	if len(values) == 0 {
		return true
	}
	v, err := strconv.ParseBool(strings.TrimSpace(values[0]))
	return err != nil || v
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o Options) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// GetDuration returns the duration value for key, or 0 if not set or invalid
func (o Options) GetDuration(key string) time.Duration {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := time.ParseDuration(strings.TrimSpace(values[0])); err == nil {
			return v
		}
	}
	return 0
}

// Get returns an arbitrary value for key, or nil
func (o Options) Get(key string) any {
	return o.any[key]
}

// GetStream returns the stream callback, or nil if streaming is not enabled
func (o Options) GetStream() StreamFn {
	if fn, ok := o.any[StreamKey].(StreamFn); ok {
		return fn
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// NoOp returns an option which does nothing
func NoOp() Opt {
	return func(o *Options) error {
		return nil
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces the value for key
func SetString(key string, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends values for key
func AddString(key string, values ...string) Opt {
	return func(o *Options) error {
		for _, v := range values {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint replaces the value for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatUint(uint64(value), 10))
		return nil
	}
}

// SetFloat64 replaces the value for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetBool replaces the value for key
func SetBool(key string, value bool) Opt {
	return func(o *Options) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}

// SetDuration replaces the value for key
func SetDuration(key string, value time.Duration) Opt {
	return func(o *Options) error {
		if value < 0 {
			return fmt.Errorf("negative duration for %q", key)
		}
		o.Values.Set(key, value.String())
		return nil
	}
}

// SetAny replaces the arbitrary value for key. A nil value removes the key.
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		if value == nil {
			delete(o.any, key)
		} else {
			o.any[key] = value
		}
		return nil
	}
}

// AddAny appends a value to a slice of values for key
func AddAny[T any](key string, value ...T) Opt {
	return func(o *Options) error {
		existing, _ := o.any[key].([]T)
		o.any[key] = append(existing, value...)
		return nil
	}
}

// WithStream enables streaming, calling fn with each chunk of text
func WithStream(fn StreamFn) Opt {
	if fn == nil {
		return NoOp()
	}
	return SetAny(StreamKey, fn)
}
