// Colored per-application lines on an interactive terminal
package console

import (
	"fmt"
	"io"
	"loglib/internal/global"
	"loglib/internal/logctx"
	"loglib/internal/random"
	"loglib/pkg/event"
	"loglib/pkg/level"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

type Options struct {
	Writer      io.Writer
	Interactive bool // false turns every render into a no-op
	ANSI        bool
}

type Sink struct {
	Namespace   []string
	mu          sync.Mutex
	out         io.Writer
	interactive bool
	ansi        bool
	colors      map[string]logctx.Color // key=application name
	lastTick    time.Time               // time of the previous printed line, any application
	clock       func() time.Time
	entropy     io.Reader
	metrics     MetricStorage
}

var levelColors = map[level.Level]logctx.Color{
	level.Debug:   logctx.LightPurple,
	level.Verbose: logctx.LightCyan,
	level.Info:    logctx.White,
	level.Warning: logctx.Yellow,
	level.Fatal:   logctx.Red,
	level.Error:   logctx.LightRed,
}

// Creates new console sink
func New(namespace []string, opts Options) (sink *Sink) {
	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}
	sink = &Sink{
		Namespace:   append(append([]string(nil), namespace...), global.NSConsole),
		out:         out,
		interactive: opts.Interactive,
		ansi:        opts.ANSI,
		colors:      make(map[string]logctx.Color),
		clock:       time.Now,
		entropy:     random.Reader,
	}
	return
}

// Console sink on stdout, active only when stdout is a terminal
func Stdout(namespace []string, ansi bool) (sink *Sink) {
	sink = New(namespace, Options{
		Writer:      os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdout.Fd())),
		ANSI:        ansi,
	})
	return
}

// Replaces the clock used for tick timestamps
func (sink *Sink) SetClock(clock func() time.Time) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if clock == nil {
		clock = time.Now
	}
	sink.clock = clock
}

// Replaces the entropy source used for application colors
func (sink *Sink) SetEntropy(source io.Reader) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if source == nil {
		source = random.Reader
	}
	sink.entropy = source
}

// Reports whether renders reach the writer
func (sink *Sink) Interactive() (interactive bool) {
	interactive = sink.interactive
	return
}

// Prints the event if the console threshold allows it
func (sink *Sink) Render(app global.Application, evt *event.Event) (err error) {
	if !sink.interactive {
		return
	}

	allowed, err := level.IsAllowed(evt.Level(), app.ConsoleLevel)
	if err != nil {
		err = fmt.Errorf("%w: console threshold for %q: %w", global.ErrInvalidArgument, app.Name, err)
		return
	}
	if !allowed {
		return
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()

	appName, err := sink.applicationLabel(app.Name)
	if err != nil {
		sink.metrics.Failures.Add(1)
		return
	}

	line := logctx.Line{
		Application: appName,
		Severity:    sink.severityLabel(evt.Level()),
		Message:     evt.Message(),
	}

	now := sink.clock()
	tick := sink.tickLabel(now)
	sink.lastTick = now

	timestamped, _ := level.IsAllowed(level.Debug, app.ConsoleLevel)
	detailed, _ := level.IsAllowed(level.Verbose, app.ConsoleLevel)
	if timestamped {
		line.Timestamp = tick
	}
	if detailed {
		line.Callsite = event.TraceString(evt.Backtrace(), sink.ansi)
	}

	text := line.Format() + "\n"
	if detailed && evt.Exception() != nil {
		text += logctx.ExceptionBlock(evt.Exception(), sink.ansi)
	}

	_, err = io.WriteString(sink.out, text)
	if err != nil {
		sink.metrics.Failures.Add(1)
		err = fmt.Errorf("%w: failed to write console line: %w", global.ErrLogging, err)
		return
	}
	sink.metrics.LinesPrinted.Add(1)
	return
}

// Application name in its memoized color. Caller holds mu.
func (sink *Sink) applicationLabel(name string) (label string, err error) {
	if !sink.ansi {
		label = name
		return
	}

	color, assigned := sink.colors[name]
	if !assigned {
		color, err = random.Pick(sink.entropy, logctx.BrightColors)
		if err != nil {
			err = fmt.Errorf("%w: failed to assign console color for %q: %w", global.ErrLogging, name, err)
			return
		}
		sink.colors[name] = color
		sink.metrics.ColorsAssigned.Add(1)
	}

	label = logctx.Colorize(name, color)
	return
}

func (sink *Sink) severityLabel(lvl level.Level) (label string) {
	label = lvl.Abbrev()
	if !sink.ansi {
		return
	}
	color, known := levelColors[lvl]
	if !known {
		return
	}
	label = logctx.Colorize(label, color)
	return
}

// Unix tick, colored by the gap since the previous line. Caller holds mu.
func (sink *Sink) tickLabel(now time.Time) (label string) {
	label = logctx.UnixTick(now)
	if !sink.ansi || sink.lastTick.IsZero() {
		return
	}

	gap := now.Sub(sink.lastTick)
	if gap > global.TickAlertGap {
		label = logctx.Colorize(label, logctx.LightRed)
	} else if gap > global.TickWarnGap {
		label = logctx.Colorize(label, logctx.Yellow)
	}
	return
}
