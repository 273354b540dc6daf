package core

import (
	"context"
	"fmt"

	"github.com/segmentio/encoding/json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const LayoutTemplate = "layout"

var tracer = otel.Tracer("github.com/altheman/website/core")

// Render executes the named template against data. Any failure, including an
// unknown template name, yields an empty string; the error is only logged.
func (s *TemplateStore) Render(ctx context.Context, name string, data any) string {
	if s == nil {
		return ""
	}

	ctx, span := tracer.Start(ctx, "template.render",
		trace.WithAttributes(attribute.String("template.name", name)))
	defer span.End()

	out, err := s.render(name, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.DebugContext(ctx, "render failed", "template", name, "err", err)
		return ""
	}
	return out
}

func (s *TemplateStore) render(name string, data any) (string, error) {
	t, ok := s.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	payload, err := Payload(data)
	if err != nil {
		return "", err
	}

	return t.compiled.Render(payload)
}

// RenderPage renders content with data, then renders the layout template with
// the result placed in layout.Content.
func (s *TemplateStore) RenderPage(ctx context.Context, content string, data any, layout Layout) string {
	layout.Content = s.Render(ctx, content, data)
	return s.Render(ctx, LayoutTemplate, layout)
}

// Payload converts a typed page payload into the map form templates are
// rendered against, using the payload's json tags for key names.
func Payload(v any) (map[string]any, error) {
	switch p := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return p, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("payload %T is not an object: %w", v, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
