// Command colorfx builds the color filter for a domain and prints the
// markup a page needs to apply it.
//
// Usage:
//
//	colorfx -config colorfx.toml -domain example.com -format all
//	colorfx -config colorfx.toml -domain example.com -preview in.png -out out.png -exclude "0,0,64,64"
//	colorfx -config colorfx.toml -domain example.com -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/colorfx"
	"github.com/gogpu/colorfx/config"
	"github.com/gogpu/colorfx/preview"
	"github.com/gogpu/colorfx/registry"
	"github.com/gogpu/colorfx/shader"
	"github.com/gogpu/colorfx/stylesheet"
)

func main() {
	var (
		configPath = flag.String("config", "", "settings file (TOML)")
		domain     = flag.String("domain", "", "domain to build the filter for")
		mode       = flag.String("mode", "", "filter mode: combined or sepia (overrides config)")
		inverse    = flag.String("inverse", "", "inverse strategy: parametric or exact (overrides config)")
		tint       = flag.String("tint", "", "tint strategy: blend or lerp (overrides config)")
		format     = flag.String("format", "values", "output: values, svg, css or all")
		input      = flag.String("preview", "", "image to render a preview of")
		output     = flag.String("out", "preview.png", "preview output file")
		exclude    = flag.String("exclude", "", "excluded rectangles for the preview: x0,y0,x1,y1;...")
		compile    = flag.Bool("shader", false, "compile the GPU color matrix shader")
		watch      = flag.Bool("watch", false, "rebuild when the settings file changes")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	colorfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	overrides := config.Engine{Mode: *mode, Inverse: *inverse, Tint: *tint}
	rects, err := parseRects(*exclude)
	if err != nil {
		log.Fatalf("Invalid -exclude: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	reg := registry.New()
	builder := colorfx.NewBuilder(0)
	run := func(cfg *config.Config) error {
		f, p, ids, err := build(builder, cfg, overrides, *domain)
		if err != nil {
			return err
		}
		if _, err := stylesheet.Install(reg, p, f, ids); err != nil {
			return fmt.Errorf("install: %w", err)
		}
		if f.Singular {
			log.Printf("Warning: adjustments are not invertible, excluded content uses the identity")
		}
		return emit(os.Stdout, *format, f, p, ids)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Failed to build filter: %v", err)
	}

	if *input != "" {
		if err := renderPreview(builder, cfg, overrides, *domain, *input, *output, rects); err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
		log.Printf("Preview saved to %s", *output)
	}

	if *compile {
		prog, err := shader.Compile()
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		log.Printf("Shader compiled to %d SPIR-V words (target %v)", len(prog.SPIRV), prog.Format)
	}

	if *watch {
		if *configPath == "" {
			log.Fatalf("-watch requires -config")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := config.Watch(ctx, *configPath, func(cfg *config.Config) {
			if err := run(cfg); err != nil {
				log.Printf("Rebuild failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Watch failed: %v", err)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse("")
	}
	return config.Load(path)
}

// build resolves the settings of domain and builds its filter. Non-empty
// fields of overrides replace the [engine] table.
func build(b *colorfx.Builder, cfg *config.Config, overrides config.Engine, domain string) (colorfx.Filter, colorfx.Params, stylesheet.IDs, error) {
	engine := cfg.Engine
	if overrides.Mode != "" {
		engine.Mode = overrides.Mode
	}
	if overrides.Inverse != "" {
		engine.Inverse = overrides.Inverse
	}
	if overrides.Tint != "" {
		engine.Tint = overrides.Tint
	}
	opts, err := engine.Options()
	if err != nil {
		return colorfx.Filter{}, colorfx.Params{}, stylesheet.IDs{}, err
	}

	d := cfg.Default
	if domain != "" {
		d, _ = cfg.Lookup(domain)
	}
	p, err := d.Resolve()
	if err != nil {
		return colorfx.Filter{}, colorfx.Params{}, stylesheet.IDs{}, err
	}

	f := b.Build(p, opts...)
	return f, p, stylesheet.DefaultIDs(f.Mode), nil
}

func emit(w io.Writer, format string, f colorfx.Filter, p colorfx.Params, ids stylesheet.IDs) error {
	switch format {
	case "values":
		fmt.Fprintf(w, "forward: %s\ninverse: %s\n", f.ForwardValues(), f.InverseValues())
	case "svg":
		svg, err := stylesheet.SVG(f, ids)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, svg)
	case "css":
		fmt.Fprint(w, stylesheet.CSS(p, ids))
	case "all":
		for _, sub := range []string{"values", "svg", "css"} {
			if err := emit(w, sub, f, p, ids); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func renderPreview(b *colorfx.Builder, cfg *config.Config, overrides config.Engine, domain, in, out string, rects []image.Rectangle) error {
	f, _, _, err := build(b, cfg, overrides, domain)
	if err != nil {
		return err
	}

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(dst, preview.Render(img, f, rects)); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// parseRects parses "x0,y0,x1,y1;..." into rectangles.
func parseRects(s string) ([]image.Rectangle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var rects []image.Rectangle
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("rectangle %q: want 4 coordinates, got %d", part, len(fields))
		}
		var c [4]int
		for i, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("rectangle %q: %w", part, err)
			}
			c[i] = v
		}
		rects = append(rects, image.Rect(c[0], c[1], c[2], c[3]))
	}
	return rects, nil
}
