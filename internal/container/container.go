// Package container reads KML documents out of their delivery containers.
//
// A .kmz file is a zip archive carrying one or more .kml documents plus
// optional assets; anything else is treated as a raw document. All byte
// content is decoded as UTF-8 with invalid sequences replaced, never
// rejected.
package container

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNoDocument reports an archive that contains no .kml entry.
var ErrNoDocument = errors.New("archive contains no kml document")

// ReadDocument returns the XML text of the document at path. KMZ archives
// are unpacked in memory and the first entry named *.kml wins.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return ReadDocumentBytes(data, filepath.Base(path))
}

// ReadDocumentBytes behaves like ReadDocument for an in-memory buffer. The
// name is consulted only for its extension, which decides archive handling.
func ReadDocumentBytes(data []byte, name string) (string, error) {
	if strings.EqualFold(filepath.Ext(name), ".kmz") {
		return readArchive(data)
	}
	return decode(data), nil
}

// readArchive scans a KMZ (zip) buffer for the first .kml entry,
// case-insensitive, and returns its decoded text.
func readArchive(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open kmz archive: %w", err)
	}

	for _, entry := range zr.File {
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".kml") {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return "", fmt.Errorf("open archive entry %s: %w", entry.Name, err)
		}
		payload, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return "", fmt.Errorf("read archive entry %s: %w", entry.Name, err)
		}
		if closeErr != nil {
			return "", fmt.Errorf("close archive entry %s: %w", entry.Name, closeErr)
		}

		return decode(payload), nil
	}

	return "", ErrNoDocument
}

// decode interprets raw bytes as UTF-8, substituting the replacement rune
// for invalid sequences.
func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
