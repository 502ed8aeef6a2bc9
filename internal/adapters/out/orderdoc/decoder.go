package orderdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"orderaudit/internal/core/domain/model/order"

	"gopkg.in/yaml.v3"
)

var (
	ErrOrdersMissing     = errors.New("order document has no orders collection")
	ErrUnsupportedFormat = errors.New("unsupported order document format")
	ErrTrailingData      = errors.New("order document has data after the top-level value")
)

// Format names a serialization of the order document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// FormatFromContentType maps a media type to a format. An empty content type is JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if contentType == "" {
		return FormatJSON, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	switch mediaType {
	case "application/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mediaType)
	}
}

// Decode reads a whole document from r.
func Decode(r io.Reader, format Format) ([]*order.Order, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read order document: %w", err)
	}

	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func DecodeJSON(data []byte) ([]*order.Order, error) {
	var doc documentDTO
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json order document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json order document: %w", ErrTrailingData)
	}
	return doc.toDomain()
}

func DecodeYAML(data []byte) ([]*order.Order, error) {
	var doc documentDTO
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml order document: %w", err)
	}
	return doc.toDomain()
}

func (doc documentDTO) toDomain() ([]*order.Order, error) {
	if doc.Orders == nil {
		return nil, ErrOrdersMissing
	}

	orders := make([]*order.Order, 0, len(*doc.Orders))
	for _, dto := range *doc.Orders {
		orders = append(orders, dto.toDomain())
	}
	return orders, nil
}
