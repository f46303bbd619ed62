package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"gopkg.in/yaml.v3"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const DefaultLogPath = "./tetriterm.log"

// Config holds every setting of a session. The YAML file provides defaults,
// flags set on the command line override them.
type Config struct {
	Seed     int64         `yaml:"seed"`
	Interval time.Duration `yaml:"interval"`
	LogPath  string        `yaml:"log"`
	Nickname string        `yaml:"nick"`
	Theme    string        `yaml:"theme"`
	Matrix   string        `yaml:"matrix"`
	Debug    bool          `yaml:"debug"`
	Verbose  bool          `yaml:"verbose"`

	Themes []gui.ThemeHex      `yaml:"themes"`
	Keys   map[string][]string `yaml:"keys"`
}

func Default() Config {
	return Config{
		Interval: game.DefaultInterval,
		LogPath:  DefaultLogPath,
		Nickname: petname.Generate(2, "-"),
		Theme:    gui.ThemeBasic.Name,
	}
}

// Load overlays the YAML document read from r on c.
func (c *Config) Load(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return c.Load(f)
}

// Parse builds the configuration from command line arguments (without the
// program name). The file named by -config is read first and the flags that
// were explicitly set are applied on top of it.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	var (
		path string
		set  = Config{}
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to YAML config file")
	fs.StringVar(&set.LogPath, "log", c.LogPath, "path to log file")
	fs.Int64Var(&set.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.DurationVar(&set.Interval, "interval", c.Interval, "initial drop interval")
	fs.StringVar(&set.Nickname, "nick", "", "nickname")
	fs.StringVar(&set.Theme, "theme", c.Theme, "color theme")
	fs.StringVar(&set.Matrix, "matrix", "", "pre-fill board with garbage at x,y,x,y,...")
	fs.BoolVar(&set.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&set.Verbose, "verbose", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			c.LogPath = set.LogPath
		case "seed":
			c.Seed = set.Seed
		case "interval":
			c.Interval = set.Interval
		case "nick":
			c.Nickname = set.Nickname
		case "theme":
			c.Theme = set.Theme
		case "matrix":
			c.Matrix = set.Matrix
		case "debug":
			c.Debug = set.Debug
		case "verbose":
			c.Verbose = set.Verbose
		}
	})

	return c, nil
}

// LogLevel maps the debug and verbose switches to a game loop log level.
func (c Config) LogLevel() int {
	switch {
	case c.Verbose:
		return game.LogVerbose
	case c.Debug:
		return game.LogDebug
	default:
		return game.LogStandard
	}
}

// ParseMatrix reads a comma separated list of x,y coordinate pairs.
func ParseMatrix(s string) ([]mino.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("matrix: odd number of coordinates (%d)", len(tokens))
	}

	points := make([]mino.Point, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return nil, fmt.Errorf("matrix: token #%d: %w", i, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(tokens[i+1]))
		if err != nil {
			return nil, fmt.Errorf("matrix: token #%d: %w", i+1, err)
		}
		if !mino.InBounds(x, y) {
			return nil, fmt.Errorf("matrix: %s is outside the board", mino.Point{X: x, Y: y})
		}
		points = append(points, mino.Point{X: x, Y: y})
	}

	return points, nil
}

// Board returns the starting board described by the matrix setting.
func (c Config) Board() (mino.Board, error) {
	var b mino.Board

	points, err := ParseMatrix(c.Matrix)
	if err != nil {
		return b, err
	}

	for _, p := range points {
		b.SetBlock(p.X, p.Y, mino.BlockGarbage)
	}
	return b, nil
}

// FindTheme resolves the configured theme name.
func (c Config) FindTheme() (gui.Theme, error) {
	return gui.FindTheme(c.Theme, c.Themes)
}

func (c Config) Keybindings() ([]gui.Keybinding, error) {
	return gui.ParseKeybindings(c.Keys)
}
