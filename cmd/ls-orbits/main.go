// Command ls-orbits is a terminal calculator for satellite two-line element
// sets and astronomical time scales.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orbits/internal/epoch"
	"github.com/litescript/ls-orbits/internal/logging"
	"github.com/litescript/ls-orbits/internal/orbit"
	"github.com/litescript/ls-orbits/internal/report"
	"github.com/litescript/ls-orbits/internal/tle"
	"github.com/litescript/ls-orbits/internal/ui"
	"github.com/litescript/ls-orbits/internal/version"
)

// CLI flags
var (
	tleFile      string
	line1        string
	line2        string
	elementsMode bool
	stateMode    bool
	snapshotPath string
	epochValue   string
	epochFrom    string
	clockMode    bool
	watchEvery   time.Duration
	showVersion  bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&tleFile, "tle-file", "", "Read the TLE from a file")
	flag.StringVar(&line1, "l1", "", "TLE line 1 (with -l2, instead of -tle-file)")
	flag.StringVar(&line2, "l2", "", "TLE line 2")
	flag.BoolVar(&elementsMode, "elements", false, "Print the classical element set and exit")
	flag.BoolVar(&stateMode, "state", false, "Print the inertial state vector and exit")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export calculation as JSON to file (use - for stdout)")
	flag.StringVar(&epochValue, "epoch", "", "Convert a time value and exit (number, or Gregorian timestamp)")
	flag.StringVar(&epochFrom, "from", "jd", "Input format for -epoch (jd, mjd, j2000, j2000s, unix, gps, gregorian)")
	flag.BoolVar(&clockMode, "clock", false, "Print the current instant in all time scales")
	flag.DurationVar(&watchEvery, "watch", 0, "With -clock, re-print at this interval (e.g. 1s)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	if showVersion {
		fmt.Println("ls-orbits v" + version.Version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	switch {
	case epochValue != "":
		if err := runEpochConvert(epochValue, epochFrom); err != nil {
			fatal(err)
		}

	case clockMode:
		runClock(ctx)

	default:
		rec, err := loadTLE()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			flag.Usage()
			os.Exit(2)
		}
		logger.Debug("Parsed TLE: epoch %s, mean motion %.8f rev/day",
			rec.Epoch.String(), rec.MeanMotion)

		el, err := orbit.FromTLE(rec)
		if err != nil {
			fatal(err)
		}

		headless := elementsMode || stateMode || snapshotPath != ""
		if headless {
			if err := runHeadless(el); err != nil {
				fatal(err)
			}
			return
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Piped output with no mode flags: behave like -elements.
			report.WriteElements(os.Stdout, el)
			return
		}

		p := tea.NewProgram(ui.New(el), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadTLE reads the record from -tle-file or the -l1/-l2 pair.
func loadTLE() (tle.Record, error) {
	if tleFile != "" {
		data, err := os.ReadFile(tleFile)
		if err != nil {
			return tle.Record{}, fmt.Errorf("read TLE file: %w", err)
		}
		return tle.ParseLines(string(data))
	}
	if line1 != "" || line2 != "" {
		return tle.Parse(line1, line2)
	}
	return tle.Record{}, fmt.Errorf("no TLE input: pass -tle-file or -l1/-l2")
}

func runHeadless(el orbit.Elements) error {
	var sv *orbit.StateVector
	if stateMode || snapshotPath != "" {
		vec, err := el.StateVector()
		if err != nil {
			return err
		}
		sv = &vec
	}

	if snapshotPath != "" {
		export := report.ExportSnapshot(el, sv)
		if snapshotPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if elementsMode {
		report.WriteElements(os.Stdout, el)
		report.WriteEpochTable(os.Stdout, el.Epoch)
	}
	if stateMode {
		if elementsMode {
			fmt.Println()
		}
		report.WriteStateVector(os.Stdout, *sv)
	}
	return nil
}

// runEpochConvert handles the standalone time converter tool.
func runEpochConvert(value, from string) error {
	var (
		e   epoch.Epoch
		err error
	)

	if strings.EqualFold(from, "gregorian") {
		e, err = epoch.Parse(value)
	} else {
		var num float64
		num, err = strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("-epoch %q is not a number (use -from gregorian for timestamps)", value)
		}
		e, err = epoch.Convert(num, epoch.Format(strings.ToLower(from)))
	}
	if err != nil {
		return err
	}

	report.WriteEpochTable(os.Stdout, e)
	return nil
}

// runClock prints the current instant, repeating if -watch is set.
func runClock(ctx context.Context) {
	printNow := func() {
		report.WriteEpochTable(os.Stdout, epoch.Now())
	}

	printNow()
	if watchEvery == 0 {
		return
	}

	ticker := time.NewTicker(watchEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			printNow()
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
