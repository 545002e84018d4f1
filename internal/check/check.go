// Package check validates and canonicalizes entity document files.
package check

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/aliceplex/schema/codec"
	"github.com/aliceplex/schema/diagnostic"
	"github.com/aliceplex/schema/format"
	"github.com/aliceplex/schema/schema"
)

// ErrNoEntity is reported for files whose entity cannot be inferred.
var ErrNoEntity = errors.New("cannot infer entity from file name")

var documentExts = map[string]struct{}{
	".yaml": {},
	".yml":  {},
	".json": {},
}

// Checker checks document files against the entity schemas.
type Checker struct {
	logger     *zap.Logger
	workers    int
	strict     bool
	entity     string
	textFields []string
}

type Option func(*Checker)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithWorkers bounds the number of files checked at once.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithStrict(strict bool) Option {
	return func(c *Checker) { c.strict = strict }
}

// WithEntity forces the entity of every file instead of inferring it.
func WithEntity(entity string) Option {
	return func(c *Checker) { c.entity = entity }
}

// WithTextFields makes Format clean the prose of the given fields.
func WithTextFields(fields ...string) Option {
	return func(c *Checker) { c.textFields = fields }
}

func New(opts ...Option) *Checker {
	c := &Checker{
		logger:  zap.NewNop(),
		workers: runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Report is the outcome of checking one file.
type Report struct {
	Path   string
	Entity string
	// Documents holds the diagnostics of each document in file order.
	Documents []*diagnostic.Diagnostics
	// Err is set when the file could not be read, parsed or matched to an entity.
	Err error
}

// OK reports whether the file was read and every document is valid.
func (r Report) OK() bool {
	if r.Err != nil {
		return false
	}

	for _, d := range r.Documents {
		if !d.IsValid() {
			return false
		}
	}

	return true
}

// ErrorCount returns the number of error diagnostics across all documents.
func (r Report) ErrorCount() int {
	n := 0
	for _, d := range r.Documents {
		n += len(d.Errors)
	}

	return n
}

// EntityOf infers the entity from a file name. The entity is the last
// dot-separated token before the extension: "show.yaml", "S01E02.episode.yml".
func EntityOf(path string) (string, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := strings.Split(strings.ToLower(base), ".")
	entity := tokens[len(tokens)-1]

	if _, err := schema.Lookup(entity, false); err != nil {
		return "", false
	}

	return entity, true
}

// IsDocument reports whether path has a document extension.
func IsDocument(path string) bool {
	_, ok := documentExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (c *Checker) converter(path string) (schema.Converter, error) {
	entity := c.entity
	if entity == "" {
		var ok bool
		if entity, ok = EntityOf(path); !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrNoEntity)
		}
	}

	return schema.Lookup(entity, c.strict)
}

// CheckFile validates every document of the file at path.
func (c *Checker) CheckFile(ctx context.Context, path string) Report {
	report := Report{Path: path}

	if err := ctx.Err(); err != nil {
		report.Err = err
		return report
	}

	conv, err := c.converter(path)
	if err != nil {
		report.Err = err
		return report
	}

	report.Entity = conv.Entity()

	docs, err := codec.LoadFile(path)
	if err != nil {
		report.Err = err
		return report
	}

	for _, doc := range docs {
		report.Documents = append(report.Documents, conv.Validate(doc))
	}

	if report.OK() {
		c.logger.Debug("file is valid",
			zap.String("path", path),
			zap.String("entity", report.Entity),
			zap.Int("documents", len(report.Documents)))
	} else {
		c.logger.Warn("file is invalid",
			zap.String("path", path),
			zap.String("entity", report.Entity),
			zap.Int("errors", report.ErrorCount()))
	}

	return report
}

// CheckFiles checks paths in parallel. Reports are returned in input order.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) []Report {
	reports := make([]Report, len(paths))
	reportsMu := sync.Mutex{}

	p := pool.New().WithMaxGoroutines(c.workers)

	for idx, path := range paths {
		p.Go(func() {
			report := c.CheckFile(ctx, path)
			reportsMu.Lock()
			reports[idx] = report
			reportsMu.Unlock()
		})
	}

	p.Wait()

	return reports
}

// Format rewrites the file at path in canonical form: normalized values,
// every declared field present, fields in declaration order. JSON files stay
// JSON. Nothing is written unless every document is valid.
func (c *Checker) Format(path string) error {
	conv, err := c.converter(path)
	if err != nil {
		return err
	}

	docs, err := codec.LoadFile(path)
	if err != nil {
		return err
	}

	out := make([]schema.Mapping, 0, len(docs))

	for i, doc := range docs {
		if len(c.textFields) > 0 {
			doc = format.Fields(doc, c.textFields...)
		}

		canon, err := conv.Canonicalize(doc)
		if err != nil {
			return fmt.Errorf("%s: document %d: %w", path, i, err)
		}

		out = append(out, canon)
	}

	if err := codec.WriteFile(out, conv.Fields(), path); err != nil {
		return err
	}

	c.logger.Info("formatted file", zap.String("path", path), zap.Int("documents", len(out)))

	return nil
}
