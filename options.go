package odbcbatch

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default option values
const (
	DefaultParameterSetsToBuffer    = 1000
	DefaultVarcharMaxCharacterLimit = 65535
	DefaultReadBufferMegabytes      = 20
)

// Options controls buffering of queries and result sets.
type Options struct {
	// ReadBufferSize is the batch size of result sets.
	ReadBufferSize BufferSize `yaml:"read_buffer_size"`
	// ParameterSetsToBuffer is how many parameter rows are sent per execute.
	ParameterSetsToBuffer int `yaml:"parameter_sets_to_buffer"`
	// UseAsyncIO enables double buffered result sets that fetch the next
	// batch in the background.
	UseAsyncIO bool `yaml:"use_async_io"`
	// VarcharMaxCharacterLimit caps the buffer width of string columns
	// whose reported size is unbounded or larger than the limit.
	VarcharMaxCharacterLimit int `yaml:"varchar_max_character_limit"`
}

// Option configures Options.
type Option func(*Options)

// WithReadBufferSize sets the result set batch size.
func WithReadBufferSize(size BufferSize) Option {
	return func(o *Options) { o.ReadBufferSize = size }
}

// WithParameterSetsToBuffer sets the parameter batch size.
func WithParameterSetsToBuffer(n int) Option {
	return func(o *Options) { o.ParameterSetsToBuffer = n }
}

// WithAsyncIO enables or disables double buffering.
func WithAsyncIO(enabled bool) Option {
	return func(o *Options) { o.UseAsyncIO = enabled }
}

// WithVarcharMaxCharacterLimit sets the string column width limit.
func WithVarcharMaxCharacterLimit(n int) Option {
	return func(o *Options) { o.VarcharMaxCharacterLimit = n }
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		ReadBufferSize:           Megabytes(DefaultReadBufferMegabytes),
		ParameterSetsToBuffer:    DefaultParameterSetsToBuffer,
		VarcharMaxCharacterLimit: DefaultVarcharMaxCharacterLimit,
	}
}

// NewOptions returns the default options with opts applied.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate checks that all values are usable.
func (o Options) Validate() error {
	if o.ReadBufferSize.IsMegabytes() && o.ReadBufferSize.Value() <= 0 {
		return errors.Errorf("read_buffer_size must be positive, got %s", o.ReadBufferSize)
	}
	if o.ReadBufferSize.Value() < 0 {
		return errors.Errorf("read_buffer_size must not be negative, got %s", o.ReadBufferSize)
	}
	if o.ParameterSetsToBuffer <= 0 {
		return errors.Errorf("parameter_sets_to_buffer must be positive, got %d", o.ParameterSetsToBuffer)
	}
	if o.VarcharMaxCharacterLimit <= 0 {
		return errors.Errorf("varchar_max_character_limit must be positive, got %d", o.VarcharMaxCharacterLimit)
	}
	return nil
}

// ParseOptions reads options from YAML. Keys that are absent keep their defaults.
func ParseOptions(data []byte) (Options, error) {
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, errors.Wrap(err, "parse options")
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptions reads options from a YAML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrapf(err, "read options file %s", path)
	}
	return ParseOptions(data)
}
