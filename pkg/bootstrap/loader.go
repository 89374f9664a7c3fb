package bootstrap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errDryRunRollback aborts an otherwise successful dry-run transaction.
var errDryRunRollback = errors.New("dry run rollback")

// Loader applies a directory tree of bootstrap files to the database in a
// single transaction.
type Loader struct {
	db       *gorm.DB
	renderer *Renderer
	logger   *zap.Logger
	pattern  string
	dryRun   bool
}

// NewLoader creates a Loader that renders files against the process
// environment and discovers them with DefaultPattern.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{
		db:       db,
		renderer: NewRenderer(EnvBindings()),
		logger:   zap.NewNop(),
		pattern:  DefaultPattern,
	}
}

// WithLogger sets the logger used for per-file progress.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	l.logger = logger
	return l
}

// WithBindings replaces the template variable context.
func (l *Loader) WithBindings(bindings map[string]string) *Loader {
	l.renderer = NewRenderer(bindings)
	return l
}

// WithPattern overrides the discovery glob pattern.
func (l *Loader) WithPattern(pattern string) *Loader {
	l.pattern = pattern
	return l
}

// WithDryRun makes Bootstrap validate and then roll back instead of
// committing.
func (l *Loader) WithDryRun(dryRun bool) *Loader {
	l.dryRun = dryRun
	return l
}

// Bootstrap loads every matching file under root. Either every record in
// every file commits, or the database is left untouched and the first error
// encountered is returned. Constraint checking is deferred to commit, so
// records may reference records from files discovered later.
func (l *Loader) Bootstrap(root string) error {
	files, err := Discover(root, l.pattern)
	if err != nil {
		return err
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		// Defer all constraint checking so objects load without being
		// sorted topologically by foreign key.
		if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
			return fmt.Errorf("deferring constraints: %w", err)
		}

		for path, err := range files {
			if err != nil {
				return err
			}
			if err := l.applyFile(tx, path); err != nil {
				return err
			}
		}

		if l.dryRun {
			return errDryRunRollback
		}
		return nil
	})

	if errors.Is(err, errDryRunRollback) {
		l.logger.Info("dry run complete, all changes rolled back")
		return nil
	}
	if err != nil {
		return wrapIntegrity(err)
	}
	return nil
}

// applyFile runs one file through the render, classify, dispatch pipeline.
func (l *Loader) applyFile(tx *gorm.DB, path string) error {
	l.logger.Info("applying bootstrap file", zap.String("path", path))

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	rendered, err := l.renderer.Render(source)
	if err != nil {
		return &TemplateError{Path: path, Err: err}
	}

	typ, err := Classify(path)
	if err != nil {
		return err
	}

	var top json.RawMessage
	if err := json.Unmarshal([]byte(rendered), &top); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	records, err := splitRecords(top, path)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := Apply(tx, typ, record, path); err != nil {
			return err
		}
	}
	return nil
}

// splitRecords accepts a single top-level object or an array of objects.
func splitRecords(top json.RawMessage, path string) ([]json.RawMessage, error) {
	switch jsonKind(top) {
	case "object":
		return []json.RawMessage{top}, nil
	case "array":
		var items []json.RawMessage
		if err := json.Unmarshal(top, &items); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		for _, item := range items {
			if jsonKind(item) != "object" {
				return nil, &MalformedRecordError{Path: path, Got: jsonKind(item)}
			}
		}
		return items, nil
	default:
		return nil, &MalformedRecordError{Path: path, Got: jsonKind(top)}
	}
}

func jsonKind(raw json.RawMessage) string {
	trimmed := strings.TrimLeft(string(raw), " \t\r\n")
	if trimmed == "" {
		return "empty input"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// wrapIntegrity classifies constraint violations (SQLSTATE class 23, which
// includes deferred foreign key failures surfacing at commit) as
// IntegrityError.
func wrapIntegrity(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &IntegrityError{Err: err}
	}
	return err
}
