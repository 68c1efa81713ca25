package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-weather/pkg/config"
	terminal "github.com/mutablelogic/go-weather/pkg/ui/terminal"
	version "github.com/mutablelogic/go-weather/pkg/version"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	global "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Env    string `name:"env" type:"path" help:"Environment file" default:".env"`
	Config string `name:"config" type:"path" help:"Persona YAML file with description and instructions" optional:""`

	// Services
	Ollama    `embed:"" help:"Ollama configuration"`
	OpenMeteo `embed:"" help:"Open-Meteo configuration"`

	// Context
	ctx    context.Context
	log    zerolog.Logger
	tracer trace.Tracer
	config config.Config
	term   *terminal.Terminal
	name   string
}

type Ollama struct {
	OllamaHost  string `name:"ollama-host" env:"OLLAMA_HOST" help:"Ollama host, for example http://localhost:11434"`
	OllamaModel string `name:"ollama-model" env:"OLLAMA_MODEL" help:"Ollama model name"`
}

type OpenMeteo struct {
	OpenMeteoURL string `name:"openmeteo-url" env:"OPENMETEO_URL" help:"Open-Meteo endpoint"`
}

type CLI struct {
	Globals

	// Conversation
	Chat ChatCmd `cmd:"" default:"1" help:"Chat with the weather agent"`
	Ask  AskCmd  `cmd:"" help:"Ask the weather agent a single question"`

	// Models and Tools
	Models      ListModelsCmd  `cmd:"" help:"Return a list of models"`
	Tools       ListToolsCmd   `cmd:"" help:"Return a list of tools"`
	Temperature TemperatureCmd `cmd:"" help:"Get the current temperature at a location"`

	// Other
	Persona PersonaCmd `cmd:"" help:"Print the persona in use"`
	Check   CheckCmd   `cmd:"" help:"Check the model and weather service are available"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather forecast agent, using an Ollama model and Open-Meteo"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version": version.Version(),
		},
	)
	cli.Globals.name = execName()

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Logging to stderr, the global logger is used by the tools
	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	cli.Globals.log = log.Logger

	// Tracing, which is a no-op unless a provider is registered
	cli.Globals.tracer = global.GetTracerProvider().Tracer(cli.Globals.name)

	// Read the configuration
	cfg, err := cli.Globals.loadConfig()
	cmd.FatalIfErrorf(err)
	cli.Globals.config = cfg

	// Create a terminal
	term, err := terminal.New(os.Stdin, os.Stdout)
	cmd.FatalIfErrorf(err)
	cli.Globals.term = term

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// loadConfig reads the environment file, which fills in any settings not
// given on the command line, and the persona
func (g *Globals) loadConfig() (config.Config, error) {
	if err := config.LoadEnv(g.Env); err != nil {
		return config.Config{}, err
	}
	if g.OllamaHost == "" {
		g.OllamaHost = os.Getenv(config.EnvOllamaHost)
	}
	if g.OllamaModel == "" {
		g.OllamaModel = os.Getenv(config.EnvOllamaModel)
	}
	if g.OpenMeteoURL == "" {
		g.OpenMeteoURL = os.Getenv(config.EnvOpenMeteoURL)
	}
	persona, err := config.LoadPersona(g.Config)
	if err != nil {
		return config.Config{}, err
	}
	return config.Config{
		OllamaHost:   g.OllamaHost,
		OllamaModel:  g.OllamaModel,
		OpenMeteoURL: g.OpenMeteoURL,
		Persona:      persona,
	}, nil
}

// clientOpts returns the HTTP client options for both services
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	return opts
}
