// Package adminview implements the view controllers behind each screen of
// the Winja admin dashboard. A view owns the fixed set of concurrent fetches
// its screen needs, per-section error state so one failed fetch never blanks
// the rest of the page, pure derived-view computations (search, filters,
// counts, membership checks), and mutation handlers that write once and then
// re-fetch the affected sections.
package adminview

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	winja "github.com/winjahq/winja-go"
)

// ErrBusy is returned by a mutation invoked while another mutation on the
// same view is still in flight. It is the programmatic equivalent of a
// disabled submit button.
var ErrBusy = errors.New("another operation is in flight")

// Section holds one independently fetched piece of a page's state. A page
// renders every section that loaded and shows the error of any that did not;
// there is no page-wide failure.
type Section[T any] struct {
	Data T
	Err  error
}

// set records a fetch result. On failure the previous data is kept, so a
// page can keep showing stale data next to the error.
func (s *Section[T]) set(data T, err error) {
	s.Err = err
	if err == nil {
		s.Data = data
	}
}

// OK reports whether the section's last fetch succeeded.
func (s *Section[T]) OK() bool {
	return s.Err == nil
}

// view carries what every view controller shares: the API client, a logger,
// and the in-flight guard for mutations.
type view struct {
	client winja.Client
	logger *zap.Logger
	busy   atomic.Bool
}

func newView(client winja.Client, logger *zap.Logger) view {
	if logger == nil {
		logger = zap.NewNop()
	}
	return view{client: client, logger: logger}
}

// begin claims the view's single mutation slot. Rapid repeated submissions
// past the first get ErrBusy instead of a duplicate write.
func (v *view) begin() error {
	if !v.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (v *view) end() {
	v.busy.Store(false)
}

func (v *view) logSection(name string, err error) {
	if err != nil {
		v.logger.Warn("section failed to load",
			zap.String("section", name),
			zap.Error(err),
		)
	}
}

// join runs the given loads concurrently and returns once all have settled.
// Loads record their own outcome into their section; none of them fails the
// group, so a failing fetch never cancels or masks its siblings. Each load
// writes a distinct section, so no locking is needed: Wait is the
// synchronization point.
func join(ctx context.Context, loads ...func(context.Context)) {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loads {
		load := load
		g.Go(func() error {
			load(gctx)
			return nil
		})
	}
	_ = g.Wait()
}
