package volume

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/lumberjack"
)

var debug bool

func init() {
	if debug = os.Getenv("VOLUME_DEBUG") != ""; debug {
		mode = DebugMode
	}
}

type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	SilentMode
)

var mode = InfoMode

// SetLogMode sets the severity required for a log message to be printed.
// For example, SetLogMode(volume.WarningMode) will log any calls using
// Warningf or Errorf. To turn off all logging, use SilentMode.
func SetLogMode(newMode ModeFlag) {
	mode = newMode
	debug = mode <= DebugMode
}

func Debugf(format string, args ...interface{}) {
	if mode <= DebugMode {
		log.Printf("   DEBUG "+format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if mode <= InfoMode {
		log.Printf("    INFO "+format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if mode <= WarningMode {
		log.Printf(" WARNING "+format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if mode <= ErrorMode {
		log.Printf("   ERROR "+format, args...)
	}
}

// LogConfig selects where log messages go.
type LogConfig struct {
	Logfile string
	MaxSize int `toml:"max_log_size"`
	MaxAge  int `toml:"max_log_age"`
}

// SetLogger sends log messages to a rotating log file. Without a log file, messages go to the
// standard logger.
func (c *LogConfig) SetLogger() {
	if c == nil || c.Logfile == "" {
		return
	}
	fmt.Printf("Sending log messages to: %s\n", c.Logfile)
	log.SetOutput(&lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	})
}

func humanSize(v *Image) string {
	voxels := uint64(v.width) * uint64(v.height) * uint64(len(v.planes))
	return fmt.Sprintf("%s voxels, %s", humanize.Comma(int64(voxels)), humanize.Bytes(voxels*uint64(v.depth.Bits())/8))
}
