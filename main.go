package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/echoflaresat/gbmgeometry/attitude"
	"github.com/echoflaresat/gbmgeometry/detector"
	"github.com/echoflaresat/gbmgeometry/frame"
)

type config struct {
	quat, pos *string
	timeStr   *string
	radius    *float64
	frame     *string
	det       *string
	verbose   *bool
	showHelp  *bool
}

func defineFlags() config {
	return config{
		quat: flag.String("q", "0,0,0,1", "Attitude quaternion q1,q2,q3,q4 (q4 scalar)"),
		pos:  flag.String("pos", "", "Spacecraft position x,y,z in km, Earth centred (optional)"),

		timeStr: flag.String("time", "", "Observation time in RFC3339 format (e.g., 2017-08-17T12:41:04Z); Sun/Earth angles need it"),

		radius: flag.Float64("radius", 60.0, "Field of view radius in degrees"),
		frame:  flag.String("frame", "icrs", "Frame for the field of view: icrs or instrument"),
		det:    flag.String("det", "", "Single detector name (default: all)"),

		verbose:  flag.Bool("v", false, "Debug logging"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Detector Pointing - boresights, Sun/Earth angles and fields of view

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Spacecraft", []string{"q", "pos", "time"})
	printGroup("Field of View", []string{"radius", "frame", "det"})
	printGroup("Misc", []string{"v", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {

	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	level := slog.LevelInfo
	if *cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	att, err := parseAttitude(*cfg.quat, *cfg.pos, *cfg.timeStr)
	if err != nil {
		log.Fatalf("Invalid spacecraft state: %v", err)
	}
	if !att.Quaternion.IsUnit(1e-6) {
		slog.Warn("quaternion is not unit norm", "norm", att.Quaternion.Norm())
	}

	choice, err := detector.ParseFrameChoice(*cfg.frame)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdout, att, *cfg.det, *cfg.radius, choice); err != nil {
		log.Fatal(err)
	}
}

func parseAttitude(quatStr, posStr, timeStr string) (detector.Attitude, error) {
	var att detector.Attitude

	qs, err := parseFloats(quatStr)
	if err != nil {
		return att, fmt.Errorf("quaternion: %w", err)
	}
	if att.Quaternion, err = attitude.FromSlice(qs); err != nil {
		return att, err
	}

	ps, err := parseFloats(posStr)
	if err != nil {
		return att, fmt.Errorf("position: %w", err)
	}
	if att.Position, err = frame.PositionFromSlice(ps); err != nil {
		return att, err
	}

	if timeStr != "" {
		if att.Time, err = time.Parse(time.RFC3339, timeStr); err != nil {
			return att, fmt.Errorf("time: %w", err)
		}
	}
	return att, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// run prints one line per detector: boresight in ICRS, Sun and Earth
// angles when a time was given, and the field of view extent.
func run(w io.Writer, att detector.Attitude, name string, radius float64, choice detector.FrameChoice) error {
	a, err := detector.NewArray(att)
	if err != nil {
		return err
	}

	dets := a.Detectors()
	if name != "" {
		d, ok := a.Get(name)
		if !ok {
			return fmt.Errorf("%w: %q", detector.ErrUnknownDetector, name)
		}
		dets = []*detector.Detector{d}
	}

	rings, err := a.FieldsOfView(radius, choice)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-4s %10s %10s %9s %9s %6s %7s\n", "det", "ra", "dec", "sun", "earth", "fov", "sun-fov")
	for _, d := range dets {
		c := d.CenterICRS()
		fmt.Fprintf(w, "%-4s %10.4f %10.4f %9s %9s %6d %7s\n",
			d.Name(), c.LonDeg(), c.LatDeg(),
			formatAngle(d.SunAngle()), formatAngle(d.EarthAngle()),
			len(rings[d.Name()]), formatInside(d.SunInFieldOfView(radius)))
	}
	return nil
}

func formatInside(in bool, err error) string {
	switch {
	case err != nil:
		return "-"
	case in:
		return "yes"
	}
	return "no"
}

func formatAngle(a float64, err error) string {
	if err != nil {
		return "-"
	}
	return strconv.FormatFloat(a, 'f', 3, 64)
}
