package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/pixvault/pixvault/pkg/auth"
	"github.com/pixvault/pixvault/pkg/bootstrap"
	"github.com/pixvault/pixvault/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc       *TestContext
	root     string
	bindings map[string]string
	loadErr  error

	// generated plaintext keys by alias, never written to the database
	apiKeys   map[string]string
	apiKeyIDs map[string]uuid.UUID
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		if err := s.tc.Reset(); err != nil {
			return ctx, err
		}
		root, err := os.MkdirTemp("", "pixvault-bootstrap-*")
		if err != nil {
			return ctx, err
		}
		s.root = root
		s.bindings = make(map[string]string)
		s.apiKeys = make(map[string]string)
		s.apiKeyIDs = make(map[string]uuid.UUID)
		s.loadErr = nil
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if s.root != "" {
			_ = os.RemoveAll(s.root)
		}
		return ctx, nil
	})

	sc.Step(`^a bootstrap file "([^"]*)" containing:$`, s.aBootstrapFileContaining)
	sc.Step(`^the template binding "([^"]*)" is "([^"]*)"$`, s.theTemplateBindingIs)
	sc.Step(`^a generated api key known as "([^"]*)"$`, s.aGeneratedAPIKeyKnownAs)

	sc.Step(`^I run the bootstrap loader$`, s.iRunTheBootstrapLoader)
	sc.Step(`^I run the bootstrap loader in dry-run mode$`, s.iRunTheBootstrapLoaderDryRun)

	sc.Step(`^the load succeeds$`, s.theLoadSucceeds)
	sc.Step(`^the load fails$`, s.theLoadFails)
	sc.Step(`^the load fails with a constraint violation$`, s.theLoadFailsWithConstraintViolation)
	sc.Step(`^the "([^"]*)" table has (\d+) rows?$`, s.theTableHasRows)

	sc.Step(`^the stored credential for "([^"]*)" verifies$`, s.theStoredCredentialVerifies)
	sc.Step(`^a tampered variant of "([^"]*)" does not verify$`, s.aTamperedVariantDoesNotVerify)
}

func (s *StepsContext) aBootstrapFileContaining(relpath string, contents *godog.DocString) error {
	path := filepath.Join(s.root, filepath.FromSlash(relpath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(contents.Content), 0o644)
}

func (s *StepsContext) theTemplateBindingIs(name, value string) error {
	s.bindings[name] = value
	return nil
}

// aGeneratedAPIKeyKnownAs mints a key and exposes its plaintext as a
// template binding under the alias, so seed files can interpolate it the way
// a provisioning pipeline would inject a secret.
func (s *StepsContext) aGeneratedAPIKeyKnownAs(alias string) error {
	key, id, err := auth.GenerateKey()
	if err != nil {
		return err
	}
	s.apiKeys[alias] = key
	s.apiKeyIDs[alias] = id
	s.bindings[alias] = key
	return nil
}

func (s *StepsContext) runLoader(dryRun bool) error {
	loader := bootstrap.NewLoader(s.tc.DB).
		WithBindings(s.bindings).
		WithDryRun(dryRun)
	s.loadErr = loader.Bootstrap(s.root)
	return nil
}

func (s *StepsContext) iRunTheBootstrapLoader() error {
	return s.runLoader(false)
}

func (s *StepsContext) iRunTheBootstrapLoaderDryRun() error {
	return s.runLoader(true)
}

func (s *StepsContext) theLoadSucceeds() error {
	if s.loadErr != nil {
		return fmt.Errorf("expected success, got: %v", s.loadErr)
	}
	return nil
}

func (s *StepsContext) theLoadFails() error {
	if s.loadErr == nil {
		return fmt.Errorf("expected the load to fail")
	}
	return nil
}

func (s *StepsContext) theLoadFailsWithConstraintViolation() error {
	if s.loadErr == nil {
		return fmt.Errorf("expected the load to fail")
	}
	var integrity *bootstrap.IntegrityError
	if !errors.As(s.loadErr, &integrity) {
		return fmt.Errorf("expected a constraint violation, got: %v", s.loadErr)
	}
	return nil
}

func (s *StepsContext) theTableHasRows(table string, expected int) error {
	count, err := s.tc.CountRows(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, found %d", expected, table, count)
	}
	return nil
}

func (s *StepsContext) loadStoredKey(alias string) (*model.APIKey, error) {
	id, ok := s.apiKeyIDs[alias]
	if !ok {
		return nil, fmt.Errorf("no generated key known as %q", alias)
	}
	var record model.APIKey
	if err := s.tc.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("loading stored key %q: %w", alias, err)
	}
	return &record, nil
}

func (s *StepsContext) theStoredCredentialVerifies(alias string) error {
	record, err := s.loadStoredKey(alias)
	if err != nil {
		return err
	}
	if !auth.Verify(s.apiKeys[alias], record.Hash, record.Expires) {
		return fmt.Errorf("stored credential for %q did not verify", alias)
	}
	return nil
}

func (s *StepsContext) aTamperedVariantDoesNotVerify(alias string) error {
	record, err := s.loadStoredKey(alias)
	if err != nil {
		return err
	}

	key := s.apiKeys[alias]
	tampered := []byte(key)
	// Flip the first character of the random segment.
	i := strings.LastIndexByte(key, '.') + 1
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	if auth.Verify(string(tampered), record.Hash, record.Expires) {
		return fmt.Errorf("tampered variant of %q unexpectedly verified", alias)
	}
	return nil
}
