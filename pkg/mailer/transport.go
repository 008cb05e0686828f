package mailer

import "context"

// Transport delivers a message through a single provider.
// Exactly one of the returned values is non-nil.
type Transport interface {
	// Send performs one delivery attempt. Errors from the provider are
	// returned as-is.
	Send(ctx context.Context, env Envelope) (*Result, error)
}

// Callback receives the completion of a send: either err or result is set, never both.
type Callback func(err error, result *Result)

// Outcome is the single value delivered on the channel returned by Go.
type Outcome struct {
	Result *Result
	Err    error
}

// Deliver sends env through t and invokes cb exactly once.
func Deliver(ctx context.Context, t Transport, env Envelope, cb Callback) {
	res, err := send(ctx, t, env)
	if err != nil {
		cb(err, nil)
		return
	}
	cb(nil, res)
}

// Go sends env through t in a new goroutine. The returned channel receives
// exactly one Outcome and is then closed. If the transport never returns,
// nothing is delivered; bound the wait with ctx.
func Go(ctx context.Context, t Transport, env Envelope) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		res, err := send(ctx, t, env)
		ch <- Outcome{Result: res, Err: err}
	}()
	return ch
}

func send(ctx context.Context, t Transport, env Envelope) (*Result, error) {
	res, err := t.Send(ctx, env)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrEmptyResult
	}
	return res, nil
}
