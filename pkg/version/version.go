// Package version reports build metadata, set with -ldflags or read from
// the module build information.
//
//	go build -ldflags "-X github.com/mutablelogic/go-weather/pkg/version.GitTag=v1.0.0"
package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info describes the running binary
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Hash      string `json:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	GitTag    string
	GitBranch string
)

const (
	shortHash = 12
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short commit hash, or "dev"
func Version() string {
	return Get("").Version
}

// Get returns the build metadata for the named executable
func Get(name string) Info {
	info := Info{
		Name:     name,
		Tag:      GitTag,
		Branch:   GitBranch,
		Compiler: runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Hash = s.Value
			case "vcs.time":
				info.BuildTime = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	// Prefer the tag, then the branch, then the commit
	switch {
	case info.Tag != "":
		info.Version = info.Tag
	case info.Branch != "":
		info.Version = info.Branch
	case len(info.Hash) >= shortHash:
		info.Version = info.Hash[:shortHash]
	default:
		info.Version = "dev"
	}
	return info
}

// JSON returns the build metadata for the named executable as indented JSON
func JSON(name string) []byte {
	data, err := json.MarshalIndent(Get(name), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
