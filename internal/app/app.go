package app

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Dependency is the interface that wraps the basic methods of a dependency required for the application.
type Dependency interface {
	// Start is anything a dependency needs to do before it's ready to be used
	Start() error
	// Stop is anything a dependency needs to do before it's ready to be stopped
	Stop() error
	// Name is the name of the dependency. It is used for logging and identification purposes, only.
	Name() string
}

type App struct {
	serviceName string
	// deps are started in order and stopped in reverse order.
	deps []Dependency
	// depFailChan is a channel that will be used to signal when a dependency has failed to start.
	depFailChan chan error
	// osSignalChan is a channel that will be used to signal when the OS has sent a signal to the application.
	osSignalChan chan os.Signal
	// stopCalled allows stop to be called once
	stopCalled *atomic.Bool
	// runCalled allows Run to be called once
	runCalled *atomic.Bool
	// stopTimeout is the amount of time the application will wait for dependencies to stop before exiting.
	stopTimeout time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout <= 0 {
		errs = append(errs, errors.New("stop timeout is required"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided dependencies.
func CreateApp(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName:  cfg.ServiceName,
		deps:         deps,
		stopTimeout:  cfg.StopTimeout,
		stopCalled:   &atomic.Bool{},
		runCalled:    &atomic.Bool{},
		depFailChan:  make(chan error, len(deps)), // one slot per dependency
		osSignalChan: make(chan os.Signal, 1),     // first signal we get shuts down the app
	}, nil
}

// Run starts all dependencies and blocks until ctx is cancelled, the OS asks the process to
// stop, or a dependency fails to start. It then stops every dependency.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	ctxCancel, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info().Str("service", a.serviceName).Int("dependencies", len(a.deps)).Msg("starting")

	for _, dep := range a.deps {
		// Start may block for the lifetime of the dependency, so each one gets a goroutine
		go func(dep Dependency) {
			defer func() {
				if r := recover(); r != nil {
					a.depFailChan <- errors.Newf("panic in Start() for dependency %s: %v", dep.Name(), r)
				}
			}()

			log.Info().Str("dependency", dep.Name()).Msg("starting dependency")
			if err := dep.Start(); err != nil {
				a.depFailChan <- errors.Wrapf(err, "failure in Start() for dependency %s", dep.Name())
			}
		}(dep)
	}

	signal.Notify(a.osSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.osSignalChan)

	var runErr error
	select {
	case <-ctxCancel.Done():
		log.Info().Msg("app context cancelled: shutting down")
	case runErr = <-a.depFailChan:
		log.Error().Err(runErr).Msg("dependency failed to start")
	case sig := <-a.osSignalChan:
		log.Info().Str("signal", sig.String()).Msg("OS signal received: shutdown beginning")
	}

	if err := a.stop(); err != nil {
		log.Error().Err(err).Msg("error stopping application")
		return errors.Join(runErr, err)
	}

	return runErr
}

// stop attempts a graceful shutdown of each dependency, in reverse start order.
func (a *App) stop() error {
	if !a.stopCalled.CompareAndSwap(false, true) {
		return errors.New("stop has already been called")
	}

	ctxTo, cancel := context.WithTimeout(context.Background(), a.stopTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(a.deps) - 1; i >= 0; i-- {
			dep := a.deps[i]
			log.Info().Str("dependency", dep.Name()).Msg("stopping dependency")
			if err := dep.Stop(); err != nil {
				errs = append(errs, errors.Wrapf(err, "failure in Stop() for dependency %s", dep.Name()))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctxTo.Done():
		return errors.Wrap(ctxTo.Err(), "dependencies did not stop in time")
	}
}
