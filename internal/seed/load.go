package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// maxCatalogBytes bounds how much of a remote catalog is read.
const maxCatalogBytes = 8 << 20

// Load resolves source to a catalog: empty means Default, an http(s) URL is
// fetched, anything else is read as a local file
func Load(ctx context.Context, source string) (*Catalog, error) {
	switch {
	case source == "":
		return Default(), nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return Fetch(ctx, source)
	default:
		return LoadFile(source)
	}
}

// LoadFile reads a catalog file, picking the format from its extension
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		if data, err = gunzip(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	return Parse(data, format)
}

// Fetch downloads a catalog over HTTP.
// Gzipped bodies are detected from a .gz path or a gzip Content-Encoding.
func Fetch(ctx context.Context, rawURL string) (*Catalog, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	format, err := FormatFromPath(u.Path)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Ask for the raw bytes so a .gz file is not decoded twice.
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxCatalogBytes)

	var data []byte
	if strings.HasSuffix(strings.ToLower(u.Path), ".gz") || resp.Header.Get("Content-Encoding") == "gzip" {
		data, err = gunzip(body)
	} else {
		data, err = io.ReadAll(body)
		if err != nil {
			err = fmt.Errorf("failed to read catalog: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

func gunzip(r io.Reader) ([]byte, error) {
	gzReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	data, err := io.ReadAll(io.LimitReader(gzReader, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress catalog: %w", err)
	}
	return data, nil
}
