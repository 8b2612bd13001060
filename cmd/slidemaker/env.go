package main

import (
	"context"
	"io"
	"os"
	"time"

	slidemaker "github.com/alnah/go-slidemaker"
)

// DeckConverter is the part of *slidemaker.Converter the commands use.
type DeckConverter interface {
	Convert(ctx context.Context, input slidemaker.Input) (*slidemaker.ConvertResult, error)
	TemplateName() string
	MissingLayouts() []string
	Close() error
}

// Compile-time interface implementation check.
var _ DeckConverter = (*slidemaker.Converter)(nil)

// ConverterFactory builds a converter from library options.
type ConverterFactory func(opts ...slidemaker.Option) (DeckConverter, error)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and converter construction.
type Environment struct {
	Now          func() time.Time
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter ConverterFactory
}

// DefaultEnv returns the production environment: real clock, process
// streams, and headless Chrome behind the converter.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		NewConverter: newLibraryConverter,
	}
}

// newLibraryConverter adapts slidemaker.NewConverter to ConverterFactory.
func newLibraryConverter(opts ...slidemaker.Option) (DeckConverter, error) {
	conv, err := slidemaker.NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return conv, nil
}
