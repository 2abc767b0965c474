package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// pluginNamePattern matches names usable both as folder names and as the
// prefix of a C identifier (the NAME_API export macro).
var pluginNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationIssue represents a single schema violation.
type ValidationIssue struct {
	// Field is the configuration key involved, if known.
	Field string
	// Message is a human-readable description.
	Message string
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a configuration against the embedded schema. The first
// issue found is returned as a ConfigError naming the offending field.
func Validate(cfg *Config, file string) error {
	if cfg == nil {
		return NewConfigError(ConfigValidationFailed, file, "configuration is empty")
	}

	issues, err := ValidateInstance(instanceOf(cfg))
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, file, "failed to validate configuration", err)
	}
	if len(issues) > 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, file, issues[0].Field, issues[0].Message)
	}
	return nil
}

// ValidateInstance validates a JSON-compatible value against the schema.
// The error return is for schema compilation failures only.
func ValidateInstance(inst interface{}) ([]ValidationIssue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, ValidationIssue{Message: ve.Error()})
	}
	return issues, nil
}

// collectIssues walks the error tree and records leaf errors.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	field := strings.Join(ve.InstanceLocation, ".")
	if req, ok := ve.ErrorKind.(*kind.Required); ok {
		for _, missing := range req.Missing {
			*issues = append(*issues, ValidationIssue{
				Field:   missing,
				Message: fmt.Sprintf("required field %s is missing", missing),
			})
		}
		return
	}

	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	*issues = append(*issues, ValidationIssue{Field: field, Message: msg})
}

// instanceOf converts cfg into the JSON-compatible shape the validator expects.
// Empty strings are omitted so that unset and blank fields both read as missing.
func instanceOf(cfg *Config) map[string]interface{} {
	inst := make(map[string]interface{})
	for key, value := range map[string]string{
		KeyRootFolder:     cfg.RootFolder,
		KeySubFolder:      cfg.SubFolder,
		KeyTemplatePlugin: cfg.TemplatePlugin,
		KeyTemplateDir:    cfg.TemplateDir,
	} {
		if value != "" {
			inst[key] = value
		}
	}
	if len(cfg.BinaryExtensions) > 0 {
		exts := make([]interface{}, len(cfg.BinaryExtensions))
		for i, ext := range cfg.BinaryExtensions {
			exts[i] = ext
		}
		inst[KeyBinaryExtensions] = exts
	}
	return inst
}

// ValidatePluginName checks that name can be used as a plugin folder and API macro prefix.
func ValidatePluginName(name string) error {
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}
	if !pluginNamePattern.MatchString(name) {
		return fmt.Errorf("invalid plugin name %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}
	return nil
}
