package keyframes

// Option configures an Evaluator or Animator during creation.
//
// Example:
//
//	ev, err := keyframes.NewEvaluator(anim,
//	    keyframes.WithBounds(512, 512),
//	    keyframes.WithGradientPrecision(60))
type Option func(*options)

// options holds optional configuration for evaluators and animators.
type options struct {
	gradientPrecision float64
	substitutes       map[string]Substitute
	clock             Clock
	maxFrameRate      int
	width, height     float64
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		gradientPrecision: DefaultGradientPrecision,
		clock:             SystemClock(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithGradientPrecision sets how many gradient samples are precomputed per
// second of playback. Higher values cost memory and reduce color banding
// between samples. Non-positive values are ignored.
func WithGradientPrecision(perSecond float64) Option {
	return func(o *options) {
		if perSecond > 0 {
			o.gradientPrecision = perSecond
		}
	}
}

// WithSubstitutes replaces features, by name, with externally supplied
// drawables. Substituted features only expose their transform.
func WithSubstitutes(subs map[string]Substitute) Option {
	return func(o *options) {
		o.substitutes = subs
	}
}

// WithClock sets the monotonic clock used by an Animator for throttling
// and playback. Tests use it to inject a fake clock.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithMaxFrameRate caps how often an Animator accepts progress updates.
// Zero or negative means unbounded.
func WithMaxFrameRate(fps int) Option {
	return func(o *options) {
		o.maxFrameRate = fps
	}
}

// WithBounds sets the size the rendering adapter draws at. By default the
// animation is drawn at its canvas size.
func WithBounds(width, height float64) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}
