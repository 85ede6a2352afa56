package nexus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError is returned for every failure of the loader
type ConfigError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeFileRead     = "CONFIG_FILE_READ_FAILED"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeSourceFailed = "CONFIG_SOURCE_FAILED"
)

// Source is an extra configuration provider applied after env and file.
// Higher priority sources run later and win.
type Source interface {
	Load(ctx context.Context, target interface{}) error
	Name() string
	Priority() int
}

// Validator checks the fully loaded configuration
type Validator interface {
	Validate(ctx context.Context, cfg interface{}) error
}

type LoaderOptions struct {
	DefaultFileName string
	FileName        string
	OnlyEnvironment bool
	Defaults        interface{}
	Validator       Validator
	Sources         []Source
	Timeout         time.Duration
}

// Loader fills a config struct from env vars, an optional file and custom sources
type Loader struct {
	options LoaderOptions
}

type LoaderOption func(*LoaderOptions)

// WithDefaultFileName sets the file read when present and no explicit file is given
func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileName forces a specific configuration file; a missing file is an error
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

// WithOnlyEnvironment ignores every configuration file
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileName = ""
	}
}

// WithDefaults merges defaults into every field left zero after loading.
// defaults must be the same type as the target.
func WithDefaults(defaults interface{}) LoaderOption {
	return func(o *LoaderOptions) {
		o.Defaults = defaults
	}
}

func WithValidator(v Validator) LoaderOption {
	return func(o *LoaderOptions) {
		o.Validator = v
	}
}

func WithSources(sources ...Source) LoaderOption {
	return func(o *LoaderOptions) {
		o.Sources = append(o.Sources, sources...)
	}
}

func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.Timeout = timeout
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		Validator:       NewStructValidator(),
		Timeout:         30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options}
}

// Load loads configuration into cfg, which must be a pointer to a struct
func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	if l.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.Timeout)
		defer cancel()
	}

	if err := validateInputType(cfg); err != nil {
		return err
	}

	if err := l.loadBuiltin(cfg); err != nil {
		return err
	}

	if err := l.loadFromSources(ctx, cfg); err != nil {
		return err
	}

	if l.options.Defaults != nil {
		if err := mergo.Merge(cfg, l.options.Defaults); err != nil {
			return &ConfigError{Code: ErrCodeMerge, Message: "failed to merge defaults", Cause: err}
		}
	}

	if l.options.Validator != nil {
		if err := l.options.Validator.Validate(ctx, cfg); err != nil {
			return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
		}
	}

	return nil
}

func validateInputType(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}
	return nil
}

// loadBuiltin reads the file (if any) and then env; env values win over the file
func (l *Loader) loadBuiltin(cfg interface{}) error {
	fileName := l.resolveFileName()
	if fileName == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return &ConfigError{Code: ErrCodeEnvironment, Message: "failed to read environment", Cause: err}
		}
		return nil
	}

	if err := cleanenv.ReadConfig(fileName, cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileRead,
			Message: fmt.Sprintf("failed to read configuration file %s", fileName),
			Cause:   err,
		}
	}
	return nil
}

func (l *Loader) loadFromSources(ctx context.Context, cfg interface{}) error {
	sources := make([]Source, len(l.options.Sources))
	copy(sources, l.options.Sources)
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Priority() < sources[j].Priority()
	})

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := source.Load(ctx, cfg); err != nil {
			return &ConfigError{
				Code:    ErrCodeSourceFailed,
				Message: fmt.Sprintf("failed to load from source %s", source.Name()),
				Cause:   err,
			}
		}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.OnlyEnvironment {
		return ""
	}
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}

// StructValidator validates `validate` struct tags with go-playground/validator
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *StructValidator) Validate(_ context.Context, cfg interface{}) error {
	err := v.validate.Struct(cfg)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("cannot validate %T: %w", cfg, err)
	}
	return err
}

// FileSource reads an additional file (yaml, json, toml or env) on top of the loaded config
type FileSource struct {
	FilePath string
	priority int
}

func NewFileSource(filePath string, priority int) *FileSource {
	return &FileSource{
		FilePath: filePath,
		priority: priority,
	}
}

func (fs *FileSource) Load(_ context.Context, target interface{}) error {
	return cleanenv.ReadConfig(fs.FilePath, target)
}

func (fs *FileSource) Name() string {
	return fmt.Sprintf("file:%s", fs.FilePath)
}

func (fs *FileSource) Priority() int {
	return fs.priority
}
