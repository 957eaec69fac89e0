// Package engine is the command façade over the list directory and the
// durable store.
//
// Every command follows the same order: validate against the in-memory
// list, persist the change in one transaction, then apply it in memory. A
// command that fails validation or persistence leaves both sides untouched.
// Commands of one owner run one at a time; different owners never wait for
// each other.
package engine

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/dmitrijs2005/listbot/internal/engine Store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/listbot/internal/alert"
	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/directory"
	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// Store persists list mutations. Ranks are zero-indexed.
type Store interface {
	Insert(ctx context.Context, key models.ListKey, rank int, element string) error
	Append(ctx context.Context, key models.ListKey, start int, elements []string) error
	Remove(ctx context.Context, key models.ListKey, ranks []int) error
	Replace(ctx context.Context, key models.ListKey, rank int, element string) error
	Move(ctx context.Context, key models.ListKey, from, to int, element string) error
	Swap(ctx context.Context, key models.ListKey, a, b int) error
	Clear(ctx context.Context, key models.ListKey) error
	SetTitle(ctx context.Context, key models.ListKey, title string) error
	SetThumbnail(ctx context.Context, key models.ListKey, url string) error
}

// Command is one request from a chat transport.
type Command struct {
	Function    string `json:"function"`
	Parameter   string `json:"parameter"`
	Owner       int64  `json:"owner"`
	DisplayName string `json:"display_name"`
	// ListID addresses a list explicitly instead of the active one.
	ListID string `json:"list_id,omitempty"`
	// Mention names another owner, for show.
	Mention string `json:"mention,omitempty"`
}

// Reply is either a message, a set of pages, or both. Err carries the
// underlying failure for transports that need to classify it; it is never
// shown to the user directly.
type Reply struct {
	Message string        `json:"message,omitempty"`
	Pages   []models.Page `json:"pages,omitempty"`
	Err     error         `json:"-"`
}

type handlerFunc func(ctx context.Context, cmd Command) (Reply, error)

type Engine struct {
	dir    *directory.Directory
	store  Store
	alerts alert.Notifier
	logger logging.Logger

	handlers map[string]handlerFunc

	mu    sync.Mutex
	locks map[int64]*ownerLock
}

// ownerLock is dropped from Engine.locks once no command holds or waits
// for it, so the map only grows with concurrent owners.
type ownerLock struct {
	sync.Mutex
	refs int
}

func New(dir *directory.Directory, store Store, alerts alert.Notifier, logger logging.Logger) *Engine {
	e := &Engine{
		dir:    dir,
		store:  store,
		alerts: alerts,
		logger: logger.With("module", "engine"),
		locks:  make(map[int64]*ownerLock),
	}
	e.handlers = map[string]handlerFunc{
		"add":       e.add,
		"insert":    e.add,
		"remove":    e.remove,
		"delete":    e.remove,
		"replace":   e.replace,
		"rename":    e.replace,
		"edit":      e.replace,
		"move":      e.move,
		"swap":      e.swap,
		"multiadd":  e.multiadd,
		"clear":     e.clear,
		"create":    e.create,
		"drop":      e.drop,
		"use":       e.use,
		"show":      e.show,
		"title":     e.title,
		"thumbnail": e.thumbnail,
		"icon":      e.thumbnail,
		"static":    e.static,
		"":          e.static,
		"help":      e.help,
	}
	return e
}

// readOnly functions stay available to owners whose lists failed to load.
var readOnly = map[string]bool{"show": true, "help": true}

// Execute runs one command. It never returns a raw internal error to the
// user; a panicking handler is reported like any other unexpected failure.
func (e *Engine) Execute(ctx context.Context, cmd Command) (reply Reply) {
	cmd.Function = strings.ToLower(strings.TrimSpace(cmd.Function))
	h, ok := e.handlers[cmd.Function]
	if !ok {
		h = e.help
	}

	unlock := e.lockOwners(e.involvedOwners(cmd)...)
	defer unlock()

	defer func() {
		if p := recover(); p != nil {
			reply = e.failure(ctx, cmd, fmt.Errorf("panic: %v", p))
		}
	}()

	if err := e.dir.EnsureOwner(ctx, cmd.Owner); err != nil {
		return e.failure(ctx, cmd, err)
	}
	if err := e.dir.Disabled(cmd.Owner); err != nil && !readOnly[cmd.Function] {
		return e.failure(ctx, cmd, err)
	}

	reply, err := h(ctx, cmd)
	if err != nil {
		return e.failure(ctx, cmd, err)
	}
	e.logger.Debug(ctx, "command executed", "owner", cmd.Owner, "function", cmd.Function)
	return reply
}

// Summaries returns the owner's directory listing under the owner's lock.
func (e *Engine) Summaries(ctx context.Context, owner int64) ([]models.Summary, error) {
	unlock := e.lockOwners(owner)
	defer unlock()
	if err := e.dir.EnsureOwner(ctx, owner); err != nil {
		return nil, err
	}
	return e.dir.Summaries(owner), nil
}

func (e *Engine) failure(ctx context.Context, cmd Command, err error) Reply {
	if common.IsUserError(err) {
		return Reply{Message: userMessage(err), Err: err}
	}
	id := e.alerts.Notify(ctx, alert.Incident{
		Owner:     cmd.Owner,
		Function:  cmd.Function,
		Parameter: cmd.Parameter,
		ListID:    cmd.ListID,
		Err:       err,
	})
	return Reply{
		Message: fmt.Sprintf("Sorry, something went wrong on our side. The problem was reported as incident %s.", id),
		Err:     err,
	}
}

func userMessage(err error) string {
	if errors.Is(err, common.ErrOwnerDisabled) {
		return "Your lists could not be loaded and are read-only until an operator repairs them."
	}
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// involvedOwners returns the owners whose lists cmd may read or write.
func (e *Engine) involvedOwners(cmd Command) []int64 {
	owners := []int64{cmd.Owner}
	if cmd.Function == "show" {
		if other, err := mentionedOwner(cmd); err == nil && other != cmd.Owner {
			owners = append(owners, other)
		}
	}
	return owners
}

// lockOwners takes the owners' locks in ascending id order so two commands
// that need the same pair cannot deadlock.
func (e *Engine) lockOwners(owners ...int64) func() {
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	held := make([]int64, 0, len(owners))
	for _, o := range owners {
		e.mu.Lock()
		l, ok := e.locks[o]
		if !ok {
			l = &ownerLock{}
			e.locks[o] = l
		}
		l.refs++
		e.mu.Unlock()

		l.Lock()
		held = append(held, o)
	}
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i := len(held) - 1; i >= 0; i-- {
			l := e.locks[held[i]]
			l.Unlock()
			l.refs--
			if l.refs == 0 {
				delete(e.locks, held[i])
			}
		}
	}
}
