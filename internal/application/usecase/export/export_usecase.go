package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("export_usecase")

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatRSS      Format = "rss"
)

// ParseFormat accepts the format names plus "md" as an alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "rss":
		return FormatRSS, nil
	}
	return "", apperror.NewInvalidInput(fmt.Sprintf("unsupported export format '%s'", s), nil)
}

func (f Format) ext() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatRSS:
		return "xml"
	}
	return string(f)
}

func (f Format) mimeType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown"
	case FormatRSS:
		return "application/rss+xml"
	}
	return "application/octet-stream"
}

type Document struct {
	Body     []byte
	MimeType string
	FileName string
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName is "<name with whitespace runs replaced by _>_portfolio.<ext>".
func FileName(name string, f Format) string {
	base := whitespace.ReplaceAllString(name, "_")
	if base == "" {
		return "portfolio." + f.ext()
	}
	return base + "_portfolio." + f.ext()
}

type ExportUseCase struct {
	logger  logger.Logger
	siteURL string
}

func NewExportUseCase(siteURL string, log logger.Logger) *ExportUseCase {
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return &ExportUseCase{logger: log, siteURL: strings.TrimSuffix(siteURL, "/")}
}

func (uc *ExportUseCase) Render(ctx context.Context, p *profile.Profile, f Format) (*Document, error) {
	_, span := tracer.Start(ctx, "Render")
	defer span.End()
	span.SetAttributes(attribute.String("format", string(f)))

	if p == nil {
		return nil, apperror.NewInvalidInput("profile is required", nil)
	}
	p.Normalize()

	var (
		body []byte
		err  error
	)
	switch f {
	case FormatJSON:
		body, err = json.MarshalIndent(p, "", "  ")
	case FormatMarkdown:
		body = []byte(renderMarkdown(p))
	case FormatPDF:
		var buf bytes.Buffer
		err = renderPDF(&buf, p)
		body = buf.Bytes()
	case FormatRSS:
		var s string
		s, err = renderRSS(p, uc.siteURL)
		body = []byte(s)
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unsupported export format '%s'", f), nil)
	}
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to render export", err, zap.String("format", string(f)))
		return nil, apperror.NewInternal("render "+string(f)+" export", err)
	}

	return &Document{
		Body:     body,
		MimeType: f.mimeType(),
		FileName: FileName(p.Name, f),
	}, nil
}
