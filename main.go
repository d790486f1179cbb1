package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/inkfold/letterpress/canvassurface"
	"github.com/inkfold/letterpress/letter"
	"github.com/inkfold/letterpress/letterfile"
)

func main() {
	input := flag.String("in", "examples/demo.letter", "path to the .letter source file")
	output := flag.String("out", "output/letter.pdf", "path of the PDF to write")
	pagesOnly := flag.Bool("pages", false, "only print the simulated page count, render nothing")
	flag.Parse()

	if err := run(*input, *output, *pagesOnly); err != nil {
		log.Fatalf("generating letter failed: %v", err)
	}
}

// run chains parsing, pagination and rendering.
func run(inputPath, outputPath string, pagesOnly bool) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening letter file %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := letterfile.Parse(file)
	if err != nil {
		return fmt.Errorf("parsing letter file: %w", err)
	}
	req, cfg, err := doc.Letter()
	if err != nil {
		return err
	}
	// Continuation pages carry the recipient and the date by convention.
	cfg.Header.Subsequent = letter.HeaderContent{
		Enabled: true,
		Left:    req.Recipient.Name,
		Right:   "{formatted_date}",
	}

	surf, err := canvassurface.New(letter.PageWidthPt, letter.PageHeightPt)
	if err != nil {
		return err
	}

	if pagesOnly {
		total, err := letter.Simulate(&cfg, req, surf)
		if err != nil {
			return err
		}
		fmt.Printf("%d page(s)\n", total)
		return nil
	}

	out, err := letter.Generate(&cfg, req, surf, surf)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, out.PDF, 0o644); err != nil {
		return fmt.Errorf("writing PDF file: %w", err)
	}
	fmt.Printf("wrote %s (%d pages)\n", outputPath, out.Pages)
	return nil
}
