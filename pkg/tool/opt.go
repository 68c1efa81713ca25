package tool

import (
	// Packages
	opt "github.com/mutablelogic/go-weather/pkg/opt"
)

// WithToolkit sets a toolkit for generation options.
// The toolkit is stored under opt.ToolkitKey and retrieved with ToolkitFrom.
func WithToolkit(toolkit *Toolkit) opt.Opt {
	if toolkit == nil {
		return opt.NoOp()
	}
	return opt.SetAny(opt.ToolkitKey, toolkit)
}

// ToolkitFrom returns the toolkit set on the options, or nil
func ToolkitFrom(o opt.Options) *Toolkit {
	if tk, ok := o.Get(opt.ToolkitKey).(*Toolkit); ok {
		return tk
	}
	return nil
}
