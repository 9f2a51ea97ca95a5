// Command ocdtool writes and inspects map files.
//
//	ocdtool sample  [-o map.ocd]              write the reference map
//	ocdtool build   [-o map.ocd] in.geojson   convert GeoJSON polygons
//	ocdtool info    map.ocd                   print header and sections
//	ocdtool geojson map.ocd                   print objects as GeoJSON
//
// Origin, scale and default output come from OCD_ORIGIN_X, OCD_ORIGIN_Y,
// OCD_SCALE and OCD_OUTPUT, read from the environment or a .env file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/beetlebugorg/ocd/internal/config"
	"github.com/beetlebugorg/ocd/internal/logger"
	"github.com/beetlebugorg/ocd/pkg/ocd"
	"github.com/paulmach/orb/geojson"
)

func main() {
	cfg, l, err := setup(os.Stderr, ".env")
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "sample":
		err = runSample(l, cfg, args)
	case "build":
		err = runBuild(l, cfg, args)
	case "info":
		err = runInfo(os.Stdout, args)
	case "geojson":
		err = runGeoJSON(os.Stdout, args)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		l.Error(cmd+"_error", "err", err)
		os.Exit(1)
	}
}

// setup loads envFile before building the logger so LOG_LEVEL and
// LOG_FORMAT from the file apply. The logger is returned even when the
// config is invalid.
func setup(logOut io.Writer, envFile string) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	return cfg, logger.SetupTo(logOut), err
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ocdtool <sample|build|info|geojson> [flags] [file]")
}

// georefFlags registers origin and scale flags defaulting to cfg.
func georefFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Float64Var(&cfg.OriginX, "x", cfg.OriginX, "real-world X of grid origin")
	fs.Float64Var(&cfg.OriginY, "y", cfg.OriginY, "real-world Y of grid origin")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "map scale denominator")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file")
}

func newWriter(l *slog.Logger, cfg config.Config) *ocd.Writer {
	opts := ocd.DefaultOptions()
	opts.Logger = l
	return ocd.NewWriterWithOptions(cfg.OriginX, cfg.OriginY, cfg.Scale, opts)
}

// runSample writes one color, two symbols sharing it, and a triangle.
func runSample(l *slog.Logger, cfg config.Config, args []string) error {
	cfg.OriginX, cfg.OriginY = 5555000, 4444000
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	georefFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := newWriter(l, cfg)
	defer w.Close()

	color, err := w.AddColor("some color")
	if err != nil {
		return err
	}
	if _, err := w.AddAreaSymbol("symone", 4100, color); err != nil {
		return err
	}
	if _, err := w.AddAreaSymbol("symtwo", 4010, color); err != nil {
		return err
	}
	triangle := []ocd.Point{{X: 10, Y: 100}, {X: 100, Y: 10}, {X: 100, Y: 100}}
	if err := w.ExportArea(triangle, 4010); err != nil {
		return err
	}
	if err := w.WriteFile(cfg.Output); err != nil {
		return err
	}
	l.Info("sample_written", "path", cfg.Output)
	return nil
}

func runBuild(l *slog.Logger, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	georefFlags(fs, &cfg)
	code := fs.Int("code", 0, "symbol code for features without symbol_code")
	color := fs.String("color", "black", "color for symbols without a color property")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("build needs one GeoJSON input file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", fs.Arg(0), err)
	}

	w := newWriter(l, cfg)
	defer w.Close()

	stats, err := ocd.ImportFeatureCollection(w, fc, ocd.ImportOptions{
		DefaultCode:  ocd.SymbolCode(*code),
		DefaultColor: *color,
	})
	if err != nil {
		return err
	}
	if err := w.WriteFile(cfg.Output); err != nil {
		return err
	}
	l.Info("build_done",
		"path", cfg.Output,
		"objects", stats.Objects,
		"colors", stats.Colors,
		"symbols", stats.Symbols,
		"skipped", stats.Skipped,
	)
	return nil
}

func runInfo(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info needs one map file")
	}
	f, err := ocd.ReadFile(args[0])
	if err != nil {
		return err
	}

	x, y := f.Origin()
	major, minor := f.Version()
	layout := f.Layout()
	fmt.Fprintf(out, "File:     %s\n", args[0])
	fmt.Fprintf(out, "Version:  %d.%d\n", major, minor)
	fmt.Fprintf(out, "Origin:   %.3f, %.3f\n", x, y)
	fmt.Fprintf(out, "Scale:    1:%g\n", f.Scale())
	fmt.Fprintf(out, "Checksum: %016x\n", layout.Checksum)
	fmt.Fprintf(out, "Sections:\n")
	fmt.Fprintf(out, "  colors   @%-8d %d bytes\n", layout.Colors.Offset, layout.Colors.Size)
	fmt.Fprintf(out, "  symbols  @%-8d %d bytes\n", layout.Symbols.Offset, layout.Symbols.Size)
	fmt.Fprintf(out, "  objects  @%-8d %d bytes\n", layout.Objects.Offset, layout.Objects.Size)
	fmt.Fprintf(out, "  footer   @%d\n", layout.FooterOffset)

	fmt.Fprintf(out, "Colors (%d):\n", len(f.Colors()))
	for _, c := range f.Colors() {
		fmt.Fprintf(out, "  %3d  %-31s  C%d M%d Y%d K%d\n", c.Index, c.Name, c.CMYK.C, c.CMYK.M, c.CMYK.Y, c.CMYK.K)
	}
	fmt.Fprintf(out, "Symbols (%d):\n", len(f.Symbols()))
	for _, s := range f.Symbols() {
		fmt.Fprintf(out, "  %3d  %-8s %-31s  color %d\n", s.Index, s.Code, s.Name, s.Color)
	}
	fmt.Fprintf(out, "Objects: %d\n", f.ObjectCount())
	if b, ok := f.Bounds(); ok {
		fmt.Fprintf(out, "Bounds:  [%d,%d] to [%d,%d]\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	return nil
}

func runGeoJSON(out io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("geojson needs one map file")
	}
	f, err := ocd.ReadFile(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(f.FeatureCollection())
}
