package session

import (
	"context"
	"sync"
	"time"
)

// Update is a delivered result. Seq grows with every issued request.
type Update[Res any] struct {
	Seq    uint64
	Result Res
	Err    error
}

// Func computes a result for a request. It should return early once ctx is done.
type Func[Req, Res any] func(ctx context.Context, req Req) (Res, error)

// Session turns a stream of requests into results, keeping only the latest.
//
// Submit debounces; SubmitNow issues immediately. Issuing a request cancels
// the one in flight, and a result is only delivered if no newer request has
// been submitted since, even when an older computation finishes later.
// Results holds at most one undelivered update: a newer one replaces it.
type Session[Req, Res any] struct {
	fn       Func[Req, Res]
	debounce time.Duration
	latency  time.Duration

	mu       sync.Mutex
	seq      uint64
	debGen   uint64
	pending  Req
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool
	baseCtx  context.Context
	baseStop context.CancelFunc

	wg  sync.WaitGroup
	out chan Update[Res]
}

// Option configures a Session.
type Option func(*options)

type options struct {
	debounce time.Duration
	latency  time.Duration
}

// WithDebounce sets the quiet period Submit waits for.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithLatency sets the simulated delay before each computation.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

// New creates a Session. Close must be called to release it.
func New[Req, Res any](fn Func[Req, Res], opts ...Option) *Session[Req, Res] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Session[Req, Res]{
		fn:       fn,
		debounce: o.debounce,
		latency:  o.latency,
		baseCtx:  ctx,
		baseStop: stop,
		out:      make(chan Update[Res], 1),
	}
}

// Results returns the channel of delivered updates. It is closed by Close.
func (s *Session[Req, Res]) Results() <-chan Update[Res] {
	return s.out
}

// Submit schedules req after the debounce window, replacing any request
// still waiting in it. Anything in flight is superseded right away.
func (s *Session[Req, Res]) Submit(req Req) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.supersedeLocked()

	s.pending = req
	s.debGen++
	gen := s.debGen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		if s.closed || gen != s.debGen {
			s.mu.Unlock()
			return
		}
		r := s.pending
		s.issueLocked(r)
		s.mu.Unlock()
	})
}

// SubmitNow issues req immediately, dropping any debounced request. It
// returns the sequence number its Update will carry, or 0 after Close.
func (s *Session[Req, Res]) SubmitNow(req Req) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.debGen++
	if s.timer != nil {
		s.timer.Stop()
	}
	s.issueLocked(req)
	return s.seq
}

// Close cancels outstanding work, waits for it and closes Results.
func (s *Session[Req, Res]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.baseStop()
	s.mu.Unlock()

	s.wg.Wait()
	close(s.out)
}

func (s *Session[Req, Res]) supersedeLocked() {
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session[Req, Res]) issueLocked(req Req) {
	s.supersedeLocked()
	seq := s.seq

	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		if s.latency > 0 {
			t := time.NewTimer(s.latency)
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case <-t.C:
			}
		}

		res, err := s.fn(ctx, req)
		s.deliver(seq, Update[Res]{Seq: seq, Result: res, Err: err})
	}()
}

func (s *Session[Req, Res]) deliver(seq uint64, u Update[Res]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.seq {
		return
	}
	// drop an unread older update so the send never blocks
	select {
	case <-s.out:
	default:
	}
	s.out <- u
}
