package app

import "flag"

// Design size of the content. The window shrinks the view below it and
// grows the logical area above it.
const (
	DesignWidth  = 1031
	DesignHeight = 580
)

// ManifestName is the manifest file looked up in the -assets directory.
const ManifestName = "manifest.json"

// Config represents the command-line parameters for the application.
type Config struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	FPS        bool
	Debug      bool
	Fullscreen bool
	Assets     string
	Seed       uint64
	Screen     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Title:  "Showcase",
		Width:  DesignWidth,
		Height: DesignHeight,
		TPS:    60,
		FPS:    true,
		Screen: "title",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.FPS, "fps", c.FPS, "show the fps counter")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log render timings and navigation")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start fullscreen")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory with "+ManifestName+"; generated art is used when empty")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one at startup")
	fs.StringVar(&c.Screen, "screen", c.Screen, "first screen: title, cards, special-text or fire")
}
