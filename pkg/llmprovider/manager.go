package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-converter/pkg/log"
)

// Manager is the reasoning engine seen by the extraction step: a priority
// ordered provider chain that itself satisfies Provider.
// With the zero Config it calls the primary provider exactly once.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config controls how far the Manager goes after a failed call.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int           // calls per provider, values below 1 mean 1
	RetryDelay      time.Duration // grows linearly with the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain, 0 means no bound
}

// NewManager builds a chain over providers, which must already be sorted by priority.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

func (m *Manager) Name() string {
	return "manager"
}

// Model returns the model of the primary provider.
func (m *Manager) Model() string {
	if len(m.providers) == 0 {
		return ""
	}
	return m.providers[0].Model()
}

// GenerateContent runs req through the chain. A failure is returned as
// ErrAllProvidersFailed wrapping the last *ProviderError; a done context
// ends the chain without falling back.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var (
		lastErr error
		calls   int
	)
	for _, provider := range m.chain() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("engine call abandoned after %d call(s): %w", calls, err)
		}

		resp, n, err := m.callProvider(ctx, provider, req)
		calls += n
		if err == nil {
			m.logSuccess(ctx, provider, resp, calls)
			return resp, nil
		}

		m.logFailure(ctx, provider, err, n)
		var perr *ProviderError
		if !errors.As(err, &perr) {
			err = &ProviderError{Provider: provider.Name(), Model: provider.Model(), Err: err}
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w after %d call(s): %w", ErrAllProvidersFailed, calls, lastErr)
}

// chain returns the providers a request may reach.
func (m *Manager) chain() []Provider {
	if m.config.FallbackEnabled {
		return m.providers
	}
	return m.providers[:1]
}

// callProvider calls provider up to RetryAttempts times and reports how many calls were made.
func (m *Manager) callProvider(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempt, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, attempt + 1, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, attempt + 1, lastErr
		}
	}

	return nil, attempts, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response, calls int) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "Engine call succeeded: provider=%s model=%s calls=%d input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), calls, in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error, calls int) {
	m.logger.Warnf(ctx, "Engine call failed: provider=%s model=%s calls=%d error=%v",
		provider.Name(), provider.Model(), calls, err)
}
