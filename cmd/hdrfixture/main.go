// hdrfixture generates deterministic HDR sample files for decoder tests.
//
// The corpus covers two container formats: a simplified single-part
// scanline OpenEXR variant (uncompressed FLOAT RGB) and Radiance RGBE
// (flat and run-length encoded scanlines), plus corrupt and empty variants
// for error-path coverage. Output is byte-identical across runs.
//
// Usage:
//
//	hdrfixture [options]
//
// Options:
//
//	-o <dir>         write fixture files into a directory
//	-archive <path>  write all fixtures as one tar.gz bundle
//	-list            list fixture names and sizes without writing
//	-version         show version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrjoshuak/go-hdrfixture/fixture"
)

const version = "1.0.0"

func main() {
	outDir := flag.String("o", "", "output directory for fixture files")
	archivePath := flag.String("archive", "", "write fixtures as a tar.gz bundle")
	list := flag.Bool("list", false, "list fixture names and sizes without writing")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hdrfixture [options]\n\n")
		fmt.Fprintf(os.Stderr, "Generate deterministic HDR sample files for decoder tests.\n\n")
		fmt.Fprintf(os.Stderr, "The corpus contains:\n")
		fmt.Fprintf(os.Stderr, "  * valid OpenEXR and Radiance RGBE pictures of a fixed gradient\n")
		fmt.Fprintf(os.Stderr, "  * corrupt and empty variants for error-path coverage\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hdrfixture version %s\n", version)
		fmt.Println("Part of go-hdrfixture - https://github.com/mrjoshuak/go-hdrfixture")
		os.Exit(0)
	}

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	if !*list && *outDir == "" && *archivePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*outDir, *archivePath, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir, archivePath string, list bool) error {
	files, err := fixture.Corpus()
	if err != nil {
		return err
	}

	if list {
		for _, f := range files {
			fmt.Printf("%s (%d bytes)\n", f.Name, len(f.Data))
		}
	}

	if outDir != "" {
		if err := fixture.WriteDir(outDir, files); err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("wrote %s (%d bytes)\n", f.Name, len(f.Data))
		}
	}

	if archivePath != "" {
		f, err := os.Create(archivePath)
		if err != nil {
			return fmt.Errorf("cannot create archive: %w", err)
		}
		if err := fixture.WriteArchive(f, files); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("cannot close archive: %w", err)
		}
		fmt.Printf("wrote %s (%d files)\n", archivePath, len(files))
	}

	return nil
}
