package bucketmap

import "log/slog"

// Option configures a Table or a Probing table.
type Option interface {
	apply(*options)
}

type optionf func(*options)

func (f optionf) apply(o *options) {
	f(o)
}

type options struct {
	hasher    Hasher64
	onRemoval RemovalCallback
	log       *slog.Logger
	policy    RemovePolicy
	guard     bool
}

func newOptions(opts []Option) options {
	o := options{hasher: DefaultHasher64{}, policy: RemoveEntry}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithHasherOption returns an Option that sets the Hasher64 used to map keys
// to slots. A nil hasher is ignored and the DefaultHasher64 is kept.
func WithHasherOption(h Hasher64) Option {
	return optionf(func(o *options) {
		if h != nil {
			o.hasher = h
		}
	})
}

// WithCapacityGuardOption returns an Option that limits the total number of
// entries to the table capacity. Once Len equals the capacity, Insert fails
// with ErrAtCapacity regardless of how full the target bucket is.
//
// The guard is disabled by default: chaining lets a bucket grow without
// bound, so a Table accepts more entries than it has slots.
func WithCapacityGuardOption() Option {
	return optionf(func(o *options) {
		o.guard = true
	})
}

// WithRemovePolicyOption returns an Option that sets the RemovePolicy
// used by Table.Remove.
func WithRemovePolicyOption(p RemovePolicy) Option {
	return optionf(func(o *options) {
		o.policy = p
	})
}

// WithRemovalCallbackOption returns an Option that sets the removal callback.
func WithRemovalCallbackOption(f RemovalCallback) Option {
	return optionf(func(o *options) {
		o.onRemoval = f
	})
}

// WithLoggerOption returns an Option that sets the logger.
// Tables only log at debug level. A nil logger disables logging.
func WithLoggerOption(l *slog.Logger) Option {
	return optionf(func(o *options) {
		o.log = l
	})
}
