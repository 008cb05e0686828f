package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns markdown templates with YAML frontmatter into HTML and text bodies.
// Parsed templates and layouts are cached; rendering itself always uses fresh data.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templates   map[string]*parsedTemplate
	layouts     map[string]*htmltemplate.Template
	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type parsedTemplate struct {
	meta *Template
	body *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
	ButtonClass string // Default: DefaultButtonClass
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM, NewButtonExtension(cfg.ButtonClass))),
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*htmltemplate.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult holds the rendered bodies and the template metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // processed markdown, before HTML conversion
}

// Render executes the named template with data and wraps the HTML in layout.
// An empty layout returns the converted markdown without wrapping.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := tmpl.body.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: execute template %s: %v", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	result := &RenderResult{
		Metadata: tmpl.meta.Metadata,
		HTML:     content.String(),
		Text:     md.String(),
	}
	if layout == "" {
		return result, nil
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := lt.Execute(&out, map[string]any{
		"Content":  htmltemplate.HTML(content.String()), //nolint:gosec // produced by goldmark with raw HTML disabled
		"Metadata": tmpl.meta.Metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = out.String()

	return result, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	return cached(r, r.templates, name, func() (*parsedTemplate, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}

		meta, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
		}

		body, err := texttemplate.New(name).Parse(meta.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse template %s: %v", ErrRenderFailed, name, err)
		}

		return &parsedTemplate{meta: meta, body: body}, nil
	})
}

func (r *Renderer) layout(name string) (*htmltemplate.Template, error) {
	return cached(r, r.layouts, name, func() (*htmltemplate.Template, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}

		lt, err := htmltemplate.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
		}
		return lt, nil
	})
}

// cached returns cache[name], loading and storing it on first use.
// Load errors are not cached.
func cached[T any](r *Renderer, cache map[string]T, name string, load func() (T, error)) (T, error) {
	r.mu.RLock()
	v, ok := cache[name]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := cache[name]; ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	cache[name] = v
	return v, nil
}
