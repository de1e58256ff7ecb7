package csv2docx

import "time"

// Option configures a Generator.
type Option func(*Generator)

// WithStyles sets the typographic values of both layouts.
func WithStyles(s Styles) Option {
	return func(g *Generator) {
		g.styles = s
	}
}

// WithCity sets the city of the letter date line.
func WithCity(city string) Option {
	return func(g *Generator) {
		g.city = city
	}
}

// WithDateFormat sets the dateutil format of the default letter date.
func WithDateFormat(format string) Option {
	return func(g *Generator) {
		g.dateFormat = format
	}
}

// WithClock replaces time.Now, for the letter date and document metadata.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("csv2docx: WithClock requires a non-nil clock")
	}
	return func(g *Generator) {
		g.now = now
	}
}

// WithSkillsLayout selects list or table skills, and the table width.
func WithSkillsLayout(layout SkillsLayout, columns int) Option {
	return func(g *Generator) {
		g.skillsLayout = layout
		g.skillsColumns = columns
	}
}

// WithPage sets the page size, orientation and margin.
func WithPage(p *PageSettings) Option {
	return func(g *Generator) {
		g.page = p
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(g *Generator) {
		g.author = author
	}
}

// WithTitle overrides the document title metadata.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithSink replaces the .docx writer, e.g. to capture documents in tests.
func WithSink(s Sink) Option {
	return func(g *Generator) {
		g.sink = s
	}
}
