// Command cbcheck checks a foreground/background color pair against an
// accessibility guideline under every simulated color vision deficiency,
// or writes a simulated copy of an image.
//
// Usage:
//
//	cbcheck -fg '#cc1a99' -bg '#1acc33' -guideline 'WCAG Contrast AAA'
//	cbcheck -image photo.jpg -impairment deuteranopia -out seen.png
//
// The exit status is 1 when the pair fails the guideline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/kovidgoyal/imaging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/colorblind"
)

// errFailed reports a completed check whose pair did not meet the guideline.
var errFailed = errors.New("guideline not met")

type config struct {
	fg, bg     string
	guideline  string
	gamma      string
	image      string
	out        string
	impairment string
	verbose    bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("cbcheck", flag.ContinueOnError)
	fs.StringVar(&c.fg, "fg", "#cc1a99", "foreground color (hex)")
	fs.StringVar(&c.bg, "bg", "#1acc33", "background color (hex)")
	fs.StringVar(&c.guideline, "guideline", colorblind.WCAGContrastAA.String(), "guideline to check")
	fs.StringVar(&c.gamma, "gamma", "accurate", "gamma curve: accurate, fast or fastest")
	fs.StringVar(&c.image, "image", "", "simulate this image instead of checking colors")
	fs.StringVar(&c.out, "out", "simulated.png", "output file for -image")
	fs.StringVar(&c.impairment, "impairment", "deuteranopia", "impairment for -image")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	err := fs.Parse(args)
	return c, err
}

func main() {
	log.SetFlags(0)
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errFailed):
		os.Exit(1)
	default:
		log.Fatalf("cbcheck: %v", err)
	}
}

func run(args []string, w io.Writer) error {
	c, err := parseFlags(args)
	if err != nil {
		return err
	}
	if c.verbose {
		colorblind.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer colorblind.SetLogger(nil)
	}

	mode, err := colorblind.ParseGammaMode(c.gamma)
	if err != nil {
		return err
	}
	space := colorblind.NewSpace(colorblind.WithGamma(mode))

	if c.image != "" {
		return simulateFile(space, c, w)
	}
	return check(space, c, w)
}

func check(space *colorblind.Space, c config, w io.Writer) error {
	fg, err := colorblind.ParseHex(c.fg)
	if err != nil {
		return fmt.Errorf("-fg: %w", err)
	}
	bg, err := colorblind.ParseHex(c.bg)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}
	g, err := colorblind.ParseGuideline(c.guideline)
	if err != nil {
		return fmt.Errorf("-guideline: %w", err)
	}

	crit := g.Criterion()
	a := space.Assess(g, fg.Norm(), bg.Norm())

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s (%s %.2f)\n", g, crit.Comparison, crit.Threshold)
	for _, imp := range colorblind.Impairments() {
		p.Fprintf(w, "  %-13s %s on %s  %s %.2f\n",
			imp,
			space.SimulateGamma8(imp, fg),
			space.SimulateGamma8(imp, bg),
			crit.Metric, a.Values[imp])
	}

	verdict := "passes"
	if !a.Pass {
		verdict = "fails"
	}
	p.Fprintf(w, "Worst under %s with %.2f: %s\n", a.Worst, a.Value(), verdict)

	if !a.Pass {
		return errFailed
	}
	return nil
}

func simulateFile(space *colorblind.Space, c config, w io.Writer) error {
	imp, err := colorblind.ParseImpairment(c.impairment)
	if err != nil {
		return fmt.Errorf("-impairment: %w", err)
	}

	in, err := os.Open(c.image)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	src, err := imaging.Decode(in, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.image, err)
	}

	dst := space.SimulateImage(imp, src)

	out, err := os.Create(c.out)
	if err != nil {
		return err
	}
	if err := png.Encode(out, dst); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", c.out, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	b := dst.Bounds()
	message.NewPrinter(language.English).Fprintf(w, "%s: %d×%d as seen with %s\n", c.out, b.Dx(), b.Dy(), imp)
	return nil
}
