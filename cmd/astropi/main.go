// Command astropi is a smart-angles console for amateur astronomy: it
// parses angle text in several notations, converts between degrees,
// radians and hours, and tracks a right ascension/declination target
// as altitude and azimuth for a chosen site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/pootle/pootlesastropi/internal/angle"
	"github.com/pootle/pootlesastropi/internal/astro"
	"github.com/pootle/pootlesastropi/internal/sidereal"
	"github.com/pootle/pootlesastropi/internal/ui"
)

func main() {
	latText := flag.String("lat", "51:28:38N", "Site latitude (e.g. 53:04:06N or 53.0685)")
	lonText := flag.String("lon", "0:00:00W", "Site longitude (e.g. 4:04:35W or -4.076)")
	raText := flag.String("ra", "", "Target right ascension (e.g. 13h25:11.6 or 201.29d)")
	decText := flag.String("dec", "", "Target declination (e.g. -11:09:41S or -11.16)")
	convert := flag.String("convert", "", "Parse one tagged value (e.g. 'lat 51:30:00N'), print every representation, exit")
	watch := flag.Duration("watch", 0, "Print the track line repeatedly at this interval instead of the TUI")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "astropi",
	})
	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if *convert != "" {
		if err := runConvert(*convert); err != nil {
			logger.Error("convert failed", "err", err)
			os.Exit(1)
		}
		return
	}

	site, err := astro.ParseEarthLocation(*latText, *lonText)
	if err != nil {
		logger.Error("bad site", "err", err)
		os.Exit(1)
	}

	var target *astro.RADec
	if *raText != "" || *decText != "" {
		target, err = astro.ParseRADec(*raText, *decText)
		if err != nil {
			logger.Error("bad target", "err", err)
			os.Exit(1)
		}
	}

	clock := sidereal.NewClock(site.Lon.Degrees())

	logger.Debug("site ready", "lat", site.Lat.Degrees(), "lon", site.Lon.Degrees())

	if *watch > 0 {
		runWatch(site, target, clock, *watch, logger)
		return
	}

	// Without a terminal there is nothing to run the TUI on; emit one
	// track line and leave, so piping still yields something useful.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		printTrackLine(os.Stdout, site, target, clock)
		return
	}

	p := tea.NewProgram(ui.New(site, target, clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI failed", "err", err)
		os.Exit(1)
	}
}

// runConvert parses one tagged value and prints every representation.
func runConvert(text string) error {
	v, err := astro.FromString(text)
	if err != nil {
		return err
	}

	fmt.Printf("kind:     %s\n", v.Kind())
	fmt.Printf("degrees:  %.6f\n", v.Degrees())
	fmt.Printf("radians:  %.8f\n", v.Radians())
	fmt.Printf("hours:    %.6f\n", v.Hours())
	fmt.Printf("default:  %s\n", v)

	if multi, err := v.Format("dx;"); err == nil {
		fmt.Printf("d:m:s:    %s\n", multi)
	}
	return nil
}

// runWatch prints the track line at an interval until interrupted.
func runWatch(site *astro.EarthLocation, target *astro.RADec, clock *sidereal.Clock, interval time.Duration, logger *log.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	printTrackLine(os.Stdout, site, target, clock)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch loop shutting down")
			return
		case <-ticker.C:
			printTrackLine(os.Stdout, site, target, clock)
		}
	}
}

// printTrackLine writes one line of sidereal time plus, when a target
// is set, its current equatorial and derived horizon position.
func printTrackLine(w *os.File, site *astro.EarthLocation, target *astro.RADec, clock *sidereal.Clock) {
	lstDeg := clock.Degrees()

	if target == nil {
		fmt.Fprintf(w, "%s LST %7.3fd | %s\n", clock.UTC().Format("15:04:05"), lstDeg, site)
		return
	}

	line := fmt.Sprintf("%s LST %7.3fd | %s, %s",
		clock.UTC().Format("15:04:05"), lstDeg,
		format(target.RA, "hx;"), format(target.Dec, "dx;"))

	obs, err := astro.ObservedFromCelestial(target, site, lstDeg)
	if err != nil {
		fmt.Fprintf(w, "%s | derive failed: %v\n", line, err)
		return
	}

	fmt.Fprintf(w, "%s | %s, %s\n", line, format(obs.Alt, "ds;"), format(obs.Az, "ds;"))
}

func format(v *angle.Value, spec string) string {
	s, err := v.Format(spec)
	if err != nil {
		return "!" + err.Error()
	}
	return s
}
