// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/avrotool/pkg/avrotool"
	"github.com/ssargent/avrotool/pkg/metrics"
)

// RunnerFactory builds the runner for one command invocation
type RunnerFactory func(opts avrotool.Options) *avrotool.Runner

// MetricsFactory builds the collectors for one command invocation
type MetricsFactory func() *metrics.Metrics

// Container holds all the dependencies for the application
type Container struct {
	runnerFactory  RunnerFactory
	metricsFactory MetricsFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		runnerFactory:  avrotool.NewRunner,
		metricsFactory: metrics.NewMetrics,
	}
}

// GetRunnerFactory returns the runner factory
func (c *Container) GetRunnerFactory() RunnerFactory {
	return c.runnerFactory
}

// GetMetricsFactory returns the metrics factory
func (c *Container) GetMetricsFactory() MetricsFactory {
	return c.metricsFactory
}

// SetRunnerFactory allows overriding the runner factory (for testing)
func (c *Container) SetRunnerFactory(factory RunnerFactory) {
	c.runnerFactory = factory
}

// SetMetricsFactory allows overriding the metrics factory (for testing)
func (c *Container) SetMetricsFactory(factory MetricsFactory) {
	c.metricsFactory = factory
}

// NewRunner builds a runner with fresh collectors unless opts carries its own
func (c *Container) NewRunner(opts avrotool.Options) *avrotool.Runner {
	if opts.Metrics == nil {
		opts.Metrics = c.metricsFactory()
	}
	return c.runnerFactory(opts)
}
