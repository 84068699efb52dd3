package table

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jobportal/admin-console/internal/core/domain"
)

// Phase is the controller's observable lifecycle state.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseLoaded    Phase = "loaded"
	PhaseLoadError Phase = "load_error"
	PhaseMutating  Phase = "mutating"
)

// Controller drives one managed collection from "screen activated" to a
// verified admin session with a filtered, paginated, mutation-capable view.
// It is not goroutine-safe: one controller serves one screen at a time.
type Controller[T any] struct {
	desc     Descriptor[T]
	verifier RoleVerifier
	log      zerolog.Logger

	token      string
	phase      Phase
	collection []T
	filtered   []T
	query      string
	page       int
	loaded     bool
	lastErr    error
	mutating   bool
	notes      []Notification
}

// New builds a controller for the given descriptor. The page size defaults to
// DefaultPageSize when the descriptor leaves it unset.
func New[T any](desc Descriptor[T], verifier RoleVerifier, log zerolog.Logger) *Controller[T] {
	if desc.PageSize <= 0 {
		desc.PageSize = DefaultPageSize
	}
	return &Controller[T]{
		desc:     desc,
		verifier: verifier,
		log:      log.With().Str("entity", desc.Entity).Logger(),
		phase:    PhaseIdle,
		page:     1,
	}
}

// Activate runs the session guard and, only on success, the initial load.
//
// An empty token fails with ErrUnauthenticated. A negative role check fails
// with ErrForbidden, and so does a role check that errors: an unverifiable
// session is never treated as admin. The guard does not retry; a failed check
// is terminal for this page view.
func (c *Controller[T]) Activate(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}

	isAdmin, err := c.verifier.VerifyAdmin(ctx, token)
	if err != nil {
		c.log.Warn().Err(err).Msg("role verification failed, denying access")
		return domain.ErrForbidden
	}
	if !isAdmin {
		return domain.ErrForbidden
	}

	c.token = token
	return c.Reload(ctx)
}

// Reload fetches the collection and replaces the in-memory view atomically.
// On failure the previous collection, if any, stays in view; the error is
// recorded as a notification and returned.
func (c *Controller[T]) Reload(ctx context.Context) error {
	c.phase = PhaseLoading

	items, err := c.desc.Load(ctx, c.token)
	if err != nil {
		lerr := &domain.LoadError{Entity: c.desc.Entity, Cause: err}
		c.lastErr = lerr
		if c.loaded {
			c.phase = PhaseLoaded
		} else {
			c.phase = PhaseLoadError
		}
		c.log.Error().Err(err).Msg("collection load failed")
		c.notify(KindError, "Load failed", lerr.Error())
		return lerr
	}

	c.collection = items
	c.loaded = true
	c.lastErr = nil
	c.phase = PhaseLoaded
	c.refilter()
	c.page = ClampPage(c.page, c.TotalPages())
	return nil
}

// SetQuery recomputes the filtered view synchronously and resets the current
// page to 1.
func (c *Controller[T]) SetQuery(query string) {
	c.query = query
	c.refilter()
	c.page = 1
}

func (c *Controller[T]) refilter() {
	c.filtered = Filter(c.collection, c.query, c.desc.FilterFields)
}

// GoToPage clamps the requested page into the valid range; there is no
// wraparound.
func (c *Controller[T]) GoToPage(page int) {
	c.page = ClampPage(page, c.TotalPages())
}

// NextPage advances one page, stopping at the last.
func (c *Controller[T]) NextPage() { c.GoToPage(c.page + 1) }

// PrevPage goes back one page, stopping at the first.
func (c *Controller[T]) PrevPage() { c.GoToPage(c.page - 1) }

// Mutate runs a create/update/delete call under the in-flight guard. On
// success the collection is refreshed from the backend (the explicit
// resynchronization step); on failure the local collection is untouched and
// the server-provided message is surfaced.
func (c *Controller[T]) Mutate(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if c.mutating {
		return domain.ErrMutationInFlight
	}
	c.mutating = true
	c.phase = PhaseMutating
	defer func() { c.mutating = false }()

	if err := fn(ctx); err != nil {
		merr := c.asMutationError(op, err)
		c.phase = PhaseLoaded
		c.log.Error().Err(err).Str("op", op).Msg("mutation failed")
		c.notify(KindError, c.desc.Entity+" "+op+" failed", merr.Error())
		return merr
	}

	c.notify(KindSuccess, c.desc.Entity+" "+op, c.desc.Entity+" "+op+" completed successfully")
	return c.Reload(ctx)
}

// MutateInPlace runs a status-transition call and, on success, patches only
// the matching record's fields locally instead of reloading. This is the one
// optimistic path: the server has already confirmed the new state.
func (c *Controller[T]) MutateInPlace(ctx context.Context, op, id string, fn func(ctx context.Context) error, patch func(*T)) error {
	if c.mutating {
		return domain.ErrMutationInFlight
	}
	c.mutating = true
	c.phase = PhaseMutating
	defer func() {
		c.mutating = false
		c.phase = PhaseLoaded
	}()

	if err := fn(ctx); err != nil {
		merr := c.asMutationError(op, err)
		c.log.Error().Err(err).Str("op", op).Str("id", id).Msg("status change failed")
		c.notify(KindError, c.desc.Entity+" "+op+" failed", merr.Error())
		return merr
	}

	patched := false
	for i := range c.collection {
		if c.desc.ID(c.collection[i]) == id {
			patch(&c.collection[i])
			patched = true
			break
		}
	}
	// The filtered slice aliases the collection when the query is empty;
	// patch it separately only when it is a distinct slice.
	if c.query != "" {
		for i := range c.filtered {
			if c.desc.ID(c.filtered[i]) == id {
				patch(&c.filtered[i])
				break
			}
		}
	}

	if !patched {
		merr := c.asMutationError(op, domain.ErrRecordNotFound)
		c.notify(KindError, c.desc.Entity+" "+op+" failed", merr.Error())
		return merr
	}

	c.notify(KindSuccess, c.desc.Entity+" "+op, c.desc.Entity+" "+id+" updated successfully")
	return nil
}

func (c *Controller[T]) asMutationError(op string, err error) *domain.MutationError {
	var merr *domain.MutationError
	if errors.As(err, &merr) {
		return merr
	}
	return &domain.MutationError{Entity: c.desc.Entity, Op: op, Cause: err}
}

// View is the render-ready snapshot of the controller.
type View[T any] struct {
	Entity     string         `json:"entity"`
	Phase      Phase          `json:"phase"`
	Rows       []T            `json:"rows"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	PageSize   int            `json:"pageSize"`
	Query      string         `json:"query,omitempty"`
	Error      string         `json:"error,omitempty"`
	Notices    []Notification `json:"notifications,omitempty"`
}

// Snapshot returns the current view and drains pending notifications.
func (c *Controller[T]) Snapshot() View[T] {
	v := View[T]{
		Entity:     c.desc.Entity,
		Phase:      c.phase,
		Rows:       PageSlice(c.filtered, c.page, c.desc.PageSize),
		Total:      len(c.filtered),
		Page:       c.page,
		TotalPages: c.TotalPages(),
		PageSize:   c.desc.PageSize,
		Query:      c.query,
		Notices:    c.TakeNotifications(),
	}
	if c.lastErr != nil {
		v.Error = c.lastErr.Error()
	}
	return v
}

// Phase reports the controller's lifecycle state.
func (c *Controller[T]) Phase() Phase { return c.phase }

// Query returns the active filter query.
func (c *Controller[T]) Query() string { return c.query }

// CurrentPage returns the 1-based page number.
func (c *Controller[T]) CurrentPage() int { return c.page }

// TotalPages returns the page count for the filtered view, minimum 1.
func (c *Controller[T]) TotalPages() int {
	return TotalPages(len(c.filtered), c.desc.PageSize)
}

// Rows returns the slice of the filtered collection visible on the current
// page.
func (c *Controller[T]) Rows() []T {
	return PageSlice(c.filtered, c.page, c.desc.PageSize)
}

// Filtered returns the whole filtered collection in original order.
func (c *Controller[T]) Filtered() []T { return c.filtered }

// TakeNotifications returns pending notifications and clears the queue.
func (c *Controller[T]) TakeNotifications() []Notification {
	notes := c.notes
	c.notes = nil
	return notes
}

func (c *Controller[T]) notify(kind Kind, title, detail string) {
	c.notes = append(c.notes, Notification{Kind: kind, Title: title, Detail: detail})
}
