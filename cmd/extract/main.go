package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/evergreenlab/plantmap/internal/container"
	"github.com/evergreenlab/plantmap/internal/geo"
	"github.com/evergreenlab/plantmap/internal/kml"
	"github.com/evergreenlab/plantmap/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input   string `short:"i" long:"in"      description:"Input file path (.kml or .kmz). Reads from stdin if empty"`
	Name    string `short:"n" long:"name"    description:"Filename hint for stdin input, decides archive handling" default:"doc.kml"`
	Output  string `short:"o" long:"out"     description:"Output file path. Writes to stdout if empty"`
	Format  string `short:"f" long:"format"  description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Raw     bool   `short:"r" long:"raw"     description:"Emit raw placemark records instead of GeoJSON"`
	Compact bool   `short:"m" long:"compact" description:"Minify JSON output"`
}

// rawResult mirrors the placemark records as extracted, before GeoJSON
// flattening.
type rawResult struct {
	Source     string          `json:"source" yaml:"source"`
	Placemarks []kml.Placemark `json:"placemarks" yaml:"placemarks"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	// Read input
	var inputData []byte
	var err error
	name := opts.Name
	source := "stdin"

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		name = filepath.Base(opts.Input)
		source = opts.Input
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to read input")
		os.Exit(2)
	}

	text, err := container.ReadDocumentBytes(inputData, name)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Failed to read document")
		os.Exit(2)
	}

	marks, err := kml.ExtractPlacemarks(text)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Failed to parse document")
		os.Exit(3)
	}

	logSummary(source, marks)

	var payload interface{}
	if opts.Raw {
		payload = rawResult{Source: source, Placemarks: marks}
	} else {
		payload = geo.FromPlacemarks(marks)
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(payload)
	} else {
		outputData, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal result")
		os.Exit(1)
	}

	if opts.Compact && opts.Format == "json" {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		if outputData, err = m.Bytes("application/json", outputData); err != nil {
			log.Error().Err(err).Msg("Failed to minify result")
			os.Exit(1)
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Error().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
			os.Exit(1)
		}
		log.Info().
			Str("path", opts.Output).
			Str("format", opts.Format).
			Msg("Result written")
	} else {
		fmt.Println(string(outputData))
	}
}

// logSummary reports what the extraction found.
func logSummary(source string, marks []kml.Placemark) {
	counts := map[kml.GeometryType]int{}
	for _, pm := range marks {
		for _, g := range pm.Geometries {
			counts[g.Type]++
		}
	}

	log.Info().
		Str("source", source).
		Int("placemarks", len(marks)).
		Int("points", counts[kml.TypePoint]).
		Int("lines", counts[kml.TypeLineString]).
		Int("polygons", counts[kml.TypePolygon]).
		Msg("Extraction complete")
}
