package clustergo

import "github.com/hupe1980/clustergo/codec"

// Option configures a KMeans engine at construction time.
type Option func(*KMeans)

// WithInitializer sets the centroid seeding strategy. The default is
// KMeansPP. Pass Manual to supply centroids yourself.
func WithInitializer(init Initializer) Option {
	return func(km *KMeans) {
		km.initializer = init
	}
}

// WithRNG injects the random generator used by Random and KMeansPP seeding.
// The default is a wall-clock seeded RNG; inject NewRNG(seed) for
// reproducible fits.
func WithRNG(rng *RNG) Option {
	return func(km *KMeans) {
		if rng != nil {
			km.rng = rng
		}
	}
}

// WithSeed is shorthand for WithRNG(NewRNG(seed)).
func WithSeed(seed int64) Option {
	return WithRNG(NewRNG(seed))
}

// WithMaxIterations caps the number of assign/update rounds as a safety bound
// against adversarial inputs that oscillate between tied assignments.
// 0 (the default) iterates until the labels are stable.
func WithMaxIterations(n int) Option {
	return func(km *KMeans) {
		km.maxIterations = n
	}
}

// WithParallel sets the number of workers for the assignment step. Each
// sample's nearest-centroid scan is independent and reads centroids only, so
// assignment parallelizes without synchronization. The default is 1
// (sequential).
func WithParallel(workers int) Option {
	return func(km *KMeans) {
		if workers > 0 {
			km.parallel = workers
		}
	}
}

// WithLogger sets the structured logger for fit and snapshot tracing.
func WithLogger(l *Logger) Option {
	return func(km *KMeans) {
		if l != nil {
			km.logger = l
		}
	}
}

// WithMetrics sets the metrics collector for monitoring.
// Pass nil to disable metrics collection.
func WithMetrics(mc MetricsCollector) Option {
	return func(km *KMeans) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		km.metrics = mc
	}
}

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(km *KMeans) {
		if c == nil {
			c = codec.Default
		}
		km.codec = c
	}
}

// WithCompression configures the compression applied to snapshot payloads.
// The default is CompressionLZ4.
func WithCompression(c Compression) Option {
	return func(km *KMeans) {
		km.compression = c
	}
}
