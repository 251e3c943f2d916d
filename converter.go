package delta2html

import "fmt"

// Converter orchestrates the delta-to-HTML pipeline:
// Parse -> structural transformers (in order) -> HTML rendering.
// Create with NewConverter and customize with options.
type Converter struct {
	cfg          converterConfig
	parserConfig ParserConfig
	transformers []Transformer
	renderer     *Renderer[string, HTMLAttrs]
}

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	html HTMLOptions
}

// Option configures a Converter.
type Option func(*Converter)

// WithParserConfig replaces the default Quill block-attribute vocabulary.
func WithParserConfig(cfg ParserConfig) Option {
	return func(c *Converter) {
		c.parserConfig = cfg
	}
}

// WithTransformers replaces the structural pipeline. Transformers run in
// the given order.
func WithTransformers(transformers ...Transformer) Option {
	return func(c *Converter) {
		c.transformers = transformers
	}
}

// WithHTMLOptions configures the packaged HTML renderer.
func WithHTMLOptions(opts HTMLOptions) Option {
	return func(c *Converter) {
		c.cfg.html = opts
	}
}

// WithRenderer replaces the packaged HTML renderer entirely, e.g. with a
// derived one carrying extra blocks or marks.
func WithRenderer(r *Renderer[string, HTMLAttrs]) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}

// NewConverter creates a Converter with the Quill parser configuration,
// the default transformer pipeline, and the packaged HTML renderer.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		parserConfig: QuillParserConfig(),
		transformers: DefaultTransformers(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.renderer == nil {
		c.renderer = NewHTMLRenderer(c.cfg.html)
	}

	return c
}

// Convert runs the full pipeline on a Delta and returns HTML.
// Parsing failures are all-or-nothing; rendering is always best-effort.
func (c *Converter) Convert(delta Delta) (string, error) {
	root, err := Parse(delta, c.parserConfig)
	if err != nil {
		return "", fmt.Errorf("parsing delta: %w", err)
	}
	root = applyTransformers(root, c.transformers)
	return c.renderer.Render(root), nil
}

// ConvertJSON decodes raw delta JSON and converts it.
func (c *Converter) ConvertJSON(data []byte) (string, error) {
	delta, err := ParseDeltaJSON(data)
	if err != nil {
		return "", err
	}
	return c.Convert(delta)
}
