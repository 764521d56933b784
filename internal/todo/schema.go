package todo

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasks-go/internal/utils"
)

//go:embed tasks.schema.json
var schemaDocument string

const schemaURL = "tasks.schema.json"

// ErrCorrupt is returned when the storage file cannot be understood.
var ErrCorrupt = errors.New("corrupt tasks file")

// ValidationError represents a schema violation with context.
type ValidationError struct {
	Path string // dotted path to the offending value
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CorruptError reports a storage file that is not valid JSON or does not
// match the schema.
type CorruptError struct {
	Path   string
	Errors []error
}

func (e *CorruptError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%s: %s: %s", ErrCorrupt, e.Path, strings.Join(msgs, "; "))
}

// Unwrap returns ErrCorrupt along with the individual violations.
func (e *CorruptError) Unwrap() []error {
	return append([]error{ErrCorrupt}, e.Errors...)
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaDocument)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// Validate checks raw storage file contents against the schema. It
// returns every violation found, or nil when data is valid.
func Validate(data []byte) ([]error, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}}, nil
	}

	err = s.Validate(doc)
	if err == nil {
		return nil, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []error{err}, nil
	}
	var errs []error
	collectSchemaErrors(&errs, ve)
	return errs, nil
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}
