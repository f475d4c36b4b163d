// Command ricoscan is a batch Thrift IDL validator and JSON AST exporter. It
// walks a path collecting *.thrift files, parses each one through the rico
// parser, and either reports parse failures or writes the parsed AST as
// JSON, all while running file parses across a worker pool.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/parser"
)

var (
	app = kingpin.New("ricoscan", "A high-performance CLI tool for parsing and validating Thrift IDL files.")

	path   = app.Flag("path", "File or directory containing Thrift files.").Short('p').Required().String()
	output = app.Flag("output", "Optional output directory for JSON AST files.").Short('o').String()
	pretty = app.Flag("pretty", "Pretty-print the JSON AST output.").Bool()
)

var fs afero.Fs = afero.NewOsFs()

// fileResult is one file's outcome, reported back through the worker pool.
type fileResult struct {
	path string
	err  error
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*path, *output, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("ricoscan: %v", err))
		os.Exit(1)
	}
}

func run(path, outputDir string, pretty bool) error {
	start := time.Now()

	files, err := collectThriftFiles(fs, path)
	if err != nil {
		return fmt.Errorf("collecting thrift files: %w", err)
	}

	if len(files) == 0 {
		fmt.Println(color.YellowString("! No Thrift files found in %s", path))
		return nil
	}

	fmt.Printf("Found %d Thrift files\n", len(files))

	if outputDir != "" {
		if err := fs.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		fmt.Printf("Output directory: %s\n", outputDir)
	}

	bar := pb.New(len(files))
	bar.ShowTimeLeft = true
	bar.ShowSpeed = false
	bar.Start()

	results := make([]fileResult, len(files))
	var mu sync.Mutex

	// Every file is processed even when earlier ones fail: the point of a
	// batch scan is a complete per-file report, so parse errors are collected
	// into results rather than returned through the group.
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			err := processFile(file, outputDir, pretty)
			mu.Lock()
			results[i] = fileResult{path: file, err: err}
			mu.Unlock()
			bar.Increment()
			return nil
		})
	}
	_ = g.Wait()
	bar.FinishPrint("")

	var failures int
	for _, r := range results {
		if r.err != nil {
			failures++
			fmt.Fprintln(os.Stderr, color.RedString("%s: %v", r.path, r.err))
		}
	}

	elapsed := time.Since(start)
	fmt.Printf(
		"%s %s %s %s %s %s %s %s %s\n",
		color.HiGreenString("Done!"),
		color.GreenString("succeeded: %d", len(files)-failures),
		color.RedString("failed: %d", failures),
		"•",
		color.CyanString("workers: %d", runtime.NumCPU()),
		"•",
		color.YellowString("time: %.3fs", elapsed.Seconds()),
		"", "",
	)

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failures, len(files))
	}
	return nil
}

// collectThriftFiles resolves path to a list of .thrift files: itself, if
// path names a single .thrift file, or every .thrift file found by walking
// path recursively.
func collectThriftFiles(fs afero.Fs, path string) ([]string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if strings.ToLower(filepath.Ext(path)) != ".thrift" {
			return nil, fmt.Errorf("%q is not a .thrift file", path)
		}
		return []string{path}, nil
	}

	var files []string
	err = afero.Walk(fs, path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(p)) == ".thrift" {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

// processFile parses a single Thrift file and, when outputDir is non-empty,
// writes its JSON AST alongside the parse result.
func processFile(input, outputDir string, pretty bool) error {
	content, err := afero.ReadFile(fs, input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	doc, err := parser.New(string(content)).Parse()
	if err != nil {
		return err
	}

	if outputDir == "" {
		return nil
	}
	return writeOutput(doc, input, outputDir, pretty)
}

func writeOutput(doc *ast.Document, input, outputDir string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = doc.ToJSONPretty()
	} else {
		data, err = doc.ToJSONCompact()
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", input, err)
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	outputPath := filepath.Join(outputDir, stem+".json")
	if err := afero.WriteFile(fs, outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
