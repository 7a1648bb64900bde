package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/logging"
	"github.com/xolan/fuel/internal/publish"
	"github.com/xolan/fuel/internal/service"
)

// Connector opens a connection to an MQTT broker.
type Connector func(cfg config.MQTTConfig, log logging.Logger) (publish.Sender, error)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is nil until Init runs, unless a test injects it.
	Services *service.Services
	Log      logging.Logger

	Now     func() time.Time
	Connect Connector
}

func connectMQTT(cfg config.MQTTConfig, log logging.Logger) (publish.Sender, error) {
	return publish.Connect(cfg, log)
}

// DefaultDeps creates a new Deps with default values
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Exit:    os.Exit,
		Log:     logging.Nop{},
		Now:     time.Now,
		Connect: connectMQTT,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	d := DefaultDeps()
	d.Services = services
	return d
}

// Init creates the services with the default paths when none are set yet.
// The log level comes from the loaded config unless verbose is set.
func (d *Deps) Init(verbose bool) error {
	if d.Services != nil {
		return nil
	}
	level := config.DefaultConfig().LogLevel
	if path, err := config.GetConfigPath(); err == nil {
		if cfg, err := config.LoadOrDefault(path); err == nil {
			level = cfg.LogLevel
		}
	}
	if verbose {
		level = "debug"
	}
	d.Log = logging.New("fuel", logging.Options{Level: level, Console: verbose, Out: d.Stderr})

	services, err := service.NewServices(d.Log)
	if err != nil {
		return err
	}
	d.Services = services
	return nil
}

// Close releases the services.
func (d *Deps) Close() {
	if d.Services != nil {
		if err := d.Services.Close(); err != nil && d.Log != nil {
			d.Log.Warnf("closing storage: %v", err)
		}
	}
}

// Fail prints an error with optional details and hint lines, then exits
// with status 1.
func (d *Deps) Fail(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(d.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(d.Stderr, "Hint: %s\n", hint)
	}
	d.Exit(1)
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
