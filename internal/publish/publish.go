package publish

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event name payloads are emitted under.
const DefaultEvent = "focus_tree"

// Options configure a Publisher.
type Options struct {
	URL                string
	Namespace          string
	Event              string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Publisher emits payloads to a socket.io server.
type Publisher struct {
	opts Options
}

// New creates a publisher. An empty URL yields a publisher that does nothing.
func New(opts Options) *Publisher {
	if opts.Event == "" {
		opts.Event = DefaultEvent
	}
	if opts.Namespace == "" {
		opts.Namespace = "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Publisher{opts: opts}
}

// Enabled reports whether the publisher has somewhere to send to.
func (p *Publisher) Enabled() bool {
	return p.opts.URL != ""
}

// Publish connects, emits every payload in order and disconnects.
func (p *Publisher) Publish(ctx context.Context, payloads []Payload) error {
	logger := ctxlog.FromContext(ctx).With("url", p.opts.URL, "event", p.opts.Event)
	if !p.Enabled() {
		logger.Debug("Publishing disabled, no viewer URL configured.")
		return nil
	}
	if len(payloads) == 0 {
		logger.Debug("Nothing to publish.")
		return nil
	}

	parsedURL, err := url.Parse(p.opts.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("invalid viewer URL %q", p.opts.URL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if p.opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	opCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.opts.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	done := newOutcome()
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to viewer", "sid", io.Id())
		for _, payload := range payloads {
			io.Emit(p.opts.Event, payload.Data())
			logger.Debug("Focus tree published.", "tag", payload.Tag, "focuses", len(payload.Focuses))
		}
		done.report(nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		done.report(fmt.Errorf("socket.io connection failed: %w", err))
	})

	io.Connect()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		logger.Info("Focus trees published.", "count", len(payloads))
		return nil
	case <-opCtx.Done():
		return fmt.Errorf("timed out after %s waiting for viewer connection", p.opts.Timeout)
	}
}

// outcome holds the first result reported by the socket callbacks. Later
// reports are dropped so a callback never blocks.
type outcome chan error

func newOutcome() outcome {
	return make(outcome, 1)
}

func (o outcome) report(err error) {
	select {
	case o <- err:
	default:
	}
}
