// Command svgconvert renders a document to an image or a PDF file,
// or prints its draw calls.
//
//	svgconvert [-mode warn|strict|ignore] [-stroke N] [-bg color] [-pdf gofpdf|stream] [-dump] [-v] in.svg [out.{png,bmp,tiff,pdf}]
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgscene/internal/config"
	"github.com/benoitkugler/svgscene/svgdraw"
	"github.com/benoitkugler/svgscene/svgpdf"
	"github.com/benoitkugler/svgscene/svgpdf/alt"
	"github.com/benoitkugler/svgscene/svgraster"
	"github.com/benoitkugler/svgscene/svgscene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	mode := flag.String("mode", cfg.ErrorMode, "reaction to unresolved references: ignore, warn or strict")
	stroke := flag.Float64("stroke", cfg.StrokeWidth, "stroke width of lines")
	bg := flag.String("bg", cfg.Background, "background color")
	pdfWriter := flag.String("pdf", "gofpdf", "PDF writer: gofpdf, or stream to write the content stream directly")
	dump := flag.Bool("dump", false, "print the draw calls instead of writing a file")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] in.svg [out.{png,bmp,tiff,pdf}]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.ErrorMode, cfg.StrokeWidth, cfg.Background = *mode, *stroke, *bg
	if *pdfWriter != "gofpdf" && *pdfWriter != "stream" {
		slog.Error("invalid flags", "pdf", *pdfWriter)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	in := flag.Arg(0)
	out := flag.Arg(1)
	if out == "" && !*dump {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	if err := run(cfg, in, out, *pdfWriter == "stream", *dump); err != nil {
		slog.Error("convert", "input", in, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, in, out string, streamPDF, dump bool) error {
	errMode, _ := cfg.Mode()
	background, _ := cfg.BackgroundColor()

	doc, err := svgscene.ReadDocument(in, errMode)
	if err != nil {
		return err
	}
	slog.Debug("document built", "width", doc.Width, "height", doc.Height, "shapes", len(doc.Shapes))

	if dump {
		var rec svgdraw.Recorder
		doc.Draw(&rec)
		fmt.Print(rec.String())
		return nil
	}

	isPDF := strings.EqualFold(filepath.Ext(out), ".pdf")
	pdfOpts := svgpdf.Options{StrokeWidth: cfg.StrokeWidth, Background: background, Compress: true}
	if isPDF && streamPDF {
		if err := alt.RenderDocumentFile(doc, out, pdfOpts); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		slog.Info("written", "output", out)
		return nil
	}
	var format svgraster.Format
	if !isPDF {
		if format, err = svgraster.FormatFromPath(out); err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if isPDF {
		err = svgpdf.RenderDocument(doc, f, pdfOpts)
	} else {
		var img *image.RGBA
		img, err = svgraster.RasterDocument(doc, svgraster.Options{StrokeWidth: cfg.StrokeWidth, Background: background, MaxPixels: cfg.MaxPixels})
		if err == nil {
			err = svgraster.Encode(f, img, format)
		}
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("written", "output", out)
	return nil
}
