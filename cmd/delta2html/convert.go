package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	delta2html "github.com/alnah/go-delta2html"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("file must have .json extension")
	ErrReadDelta        = errors.New("failed to read delta file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() *delta2html.Converter
	Release(*delta2html.Converter)
	Size() int
}

// Compile-time interface implementation check.
var _ Pool = (*delta2html.ConverterPool)(nil)

// run converts every input file, in parallel when the pool allows.
func run(flags *convertFlags, inputs []string, pool Pool, stderr io.Writer) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	for _, in := range inputs {
		if err := validateDeltaExtension(in); err != nil {
			return err
		}
	}

	outputs, err := resolveOutputs(flags.output, inputs)
	if err != nil {
		return err
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	sem := make(chan struct{}, pool.Size())

	for i, in := range inputs {
		wg.Add(1)
		go func(input, output string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := convertFile(input, output, pool); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
				mu.Unlock()
				return
			}
			if !flags.quiet {
				fmt.Fprintf(stderr, "Created %s\n", output)
			}
		}(in, outputs[i])
	}
	wg.Wait()

	return errors.Join(errs...)
}

// convertFile converts one delta JSON file to HTML.
func convertFile(input, output string, pool Pool) error {
	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadDelta, err)
	}

	conv := pool.Acquire()
	defer pool.Release(conv)

	htmlOut, err := conv.ConvertJSON(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(htmlOut), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// validateDeltaExtension checks that the file has a .json extension.
func validateDeltaExtension(path string) error {
	if ext := filepath.Ext(path); ext != ".json" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveOutputs maps each input path to its output path.
// With a single input, --output may name a file; with multiple inputs it
// must name a directory (created if missing). Without --output, each HTML
// file lands next to its source.
func resolveOutputs(output string, inputs []string) ([]string, error) {
	outputs := make([]string, len(inputs))

	if output == "" {
		for i, in := range inputs {
			outputs[i] = replaceExtension(in, ".html")
		}
		return outputs, nil
	}

	if len(inputs) == 1 && filepath.Ext(output) == ".html" {
		outputs[0] = output
		return outputs, nil
	}

	if err := os.MkdirAll(output, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	for i, in := range inputs {
		outputs[i] = filepath.Join(output, replaceExtension(filepath.Base(in), ".html"))
	}
	return outputs, nil
}

// replaceExtension swaps a path's extension.
func replaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
