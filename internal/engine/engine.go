package engine

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/BoD/a/internal/counter"
	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/live"
	"github.com/BoD/a/internal/sources"
	"github.com/BoD/a/internal/store"
)

// IntentKind identifies a launch directive for the presentation layer.
type IntentKind int

const (
	IntentLaunchApp IntentKind = iota
	IntentAppDetails
	IntentViewContact
	IntentSendSMS
	IntentWebSearch
	IntentSettingsPanel
)

// Intent is a launch directive. The engine emits them; the presentation
// layer consumes them and performs the actual platform call.
type Intent struct {
	Kind IntentKind

	PackageName  string
	ActivityName string

	ContactID int64
	LookupKey string

	PhoneNumber string

	Query string
}

// Deps are the collaborators the engine combines.
type Deps struct {
	Store           *store.Store
	Counters        *counter.Aggregator
	Apps            *sources.AppSource
	Shortcuts       *sources.ShortcutSource
	Contacts        *sources.ContactSource
	Notifications   *sources.NotificationSource
	ShortcutService sources.ShortcutService
}

// Options tune engine behavior.
type Options struct {
	// RecordDelay postpones writing a usage event after a launch so the
	// grid does not reorder mid-animation. Zero records immediately; the
	// persisted state is identical either way.
	RecordDelay time.Duration

	// SettingsLabel overrides the settings pseudo-item label.
	SettingsLabel string

	Logger *slog.Logger
}

// overlays is one consistent read of the persisted overlay state.
type overlays struct {
	renamed map[string]string
	ignored map[string]struct{}
	deleted map[string]struct{}
}

// Engine runs the combine-latest aggregation loop and exposes the query and
// command surface of the launcher core.
type Engine struct {
	deps          Deps
	logger        *slog.Logger
	recordDelay   time.Duration
	settingsLabel string

	query   *live.Value[string]
	items   *live.Value[[]launcher.Item]
	intents chan Intent

	stop chan struct{}
	wg   sync.WaitGroup

	mu           sync.Mutex
	lastOverlays overlays
}

// New creates an Engine. Call Start to begin aggregation.
func New(deps Deps, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		deps:          deps,
		logger:        logger,
		recordDelay:   opts.RecordDelay,
		settingsLabel: opts.SettingsLabel,
		query:         live.NewValue(""),
		items:         live.NewValue[[]launcher.Item](nil),
		intents:       make(chan Intent, 1),
		stop:          make(chan struct{}),
		lastOverlays: overlays{
			renamed: map[string]string{},
			ignored: map[string]struct{}{},
			deleted: map[string]struct{}{},
		},
	}
}

// Items returns the live ordered launch-item list. Every recomputation
// publishes a full snapshot, not a diff.
func (e *Engine) Items() *live.Value[[]launcher.Item] {
	return e.items
}

// Intents returns the launch-directive queue. It buffers one directive; an
// unconsumed directive is overwritten by a newer one.
func (e *Engine) Intents() <-chan Intent {
	return e.intents
}

// Start launches the aggregation loop. Each upstream subscription is primed,
// so the first snapshot is published immediately.
func (e *Engine) Start() {
	appCh := e.deps.Apps.Items().Subscribe()
	shortcutCh := e.deps.Shortcuts.Items().Subscribe()
	contactCh := e.deps.Contacts.Items().Subscribe()
	rankingCh := e.deps.Notifications.Rankings().Subscribe()
	permissionCh := e.deps.Notifications.ListenerPermitted().Subscribe()
	storeCh := e.deps.Store.Changed().Subscribe()
	queryCh := e.query.Subscribe()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-e.stop:
				return
			case <-appCh:
			case <-shortcutCh:
			case <-contactCh:
			case <-rankingCh:
			case <-permissionCh:
			case <-storeCh:
			case <-queryCh:
			}
			e.items.Set(e.recompute())
		}
	}()
}

// Stop halts the aggregation loop and any pending delayed recordings.
func (e *Engine) Stop() {
	close(e.stop)
	e.wg.Wait()
}

// recompute reads the latest value of every upstream and rebuilds the
// snapshot. Combine-latest semantics: whichever input ticked, all the others
// contribute their newest value.
func (e *Engine) recompute() []launcher.Item {
	ov := e.loadOverlays()
	snapshot := BuildSnapshot(Inputs{
		Apps:              e.deps.Apps.Items().Get(),
		Shortcuts:         e.deps.Shortcuts.Items().Get(),
		Contacts:          e.deps.Contacts.Items().Get(),
		SettingsLabel:     e.settingsLabel,
		Rankings:          e.deps.Notifications.Rankings().Get(),
		ListenerPermitted: e.deps.Notifications.ListenerPermitted().Get(),
		Counters:          e.deps.Counters.Counters(),
		Renamed:           ov.renamed,
		Ignored:           ov.ignored,
		Deleted:           ov.deleted,
		Query:             e.query.Get(),
	})
	e.logger.Debug("recomputed launch items", "count", len(snapshot))
	return snapshot
}

// loadOverlays reads the overlay tables, falling back to the last-known-good
// copies if the store cannot be read.
func (e *Engine) loadOverlays() overlays {
	renamed, err := e.deps.Store.RenamedItems()
	if err != nil {
		return e.staleOverlays("renamed", err)
	}
	ignored, err := e.deps.Store.IgnoredNotificationsItems()
	if err != nil {
		return e.staleOverlays("ignored", err)
	}
	deleted, err := e.deps.Store.DeletedItems()
	if err != nil {
		return e.staleOverlays("deleted", err)
	}

	ov := overlays{renamed: renamed, ignored: ignored, deleted: deleted}
	e.mu.Lock()
	e.lastOverlays = ov
	e.mu.Unlock()
	return ov
}

func (e *Engine) staleOverlays(what string, err error) overlays {
	e.logger.Warn("overlay read failed, serving last-known-good snapshot",
		"overlay", what, "error", err)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastOverlays
}

// SetSearchQuery updates the search filter.
func (e *Engine) SetSearchQuery(query string) {
	e.query.Set(query)
}

// ResetSearchQuery clears the search filter.
func (e *Engine) ResetSearchQuery() {
	e.query.Set("")
}

// SearchQuery returns the current search query.
func (e *Engine) SearchQuery() string {
	return e.query.Get()
}

// WebSearchActive reports whether a keyboard action would fall through to a
// web search: non-blank query with no matching items.
func (e *Engine) WebSearchActive() bool {
	return len(e.items.Get()) == 0 && strings.TrimSpace(e.query.Get()) != ""
}

// PrimaryAction opens the item: app launch, contact view, shortcut start, or
// the settings panel. The launch is recorded unless the item currently
// surfaces a notification: opening to read a notification is not an
// intentional navigation and must not feed the counters.
func (e *Engine) PrimaryAction(it launcher.Item) {
	switch it.Kind {
	case launcher.KindApp:
		e.emitIntent(Intent{Kind: IntentLaunchApp, PackageName: it.PackageName, ActivityName: it.ActivityName})
	case launcher.KindContact:
		e.emitIntent(Intent{Kind: IntentViewContact, ContactID: it.ContactID, LookupKey: it.LookupKey})
	case launcher.KindShortcut:
		if err := e.deps.ShortcutService.Launch(it.ShortcutID); err != nil {
			// Silent no-op for the user; the target may be gone.
			e.logger.Warn("could not launch shortcut", "shortcut", it.ShortcutID, "error", err)
		}
	case launcher.KindSettings:
		e.emitIntent(Intent{Kind: IntentSettingsPanel})
	}

	if !it.HasNotification() {
		e.recordLater(it.ID)
	}
}

// SecondaryAction is the long-press action: app details for apps and
// settings, SMS for contacts (which counts as a real launch), delete for
// shortcuts.
func (e *Engine) SecondaryAction(it launcher.Item) {
	switch it.Kind {
	case launcher.KindApp:
		e.emitIntent(Intent{Kind: IntentAppDetails, PackageName: it.PackageName})
	case launcher.KindContact:
		if it.PhoneNumber != "" {
			e.emitIntent(Intent{Kind: IntentSendSMS, PhoneNumber: it.PhoneNumber})
		}
		e.recordLater(it.ID)
	case launcher.KindShortcut:
		if err := e.deps.Store.Delete(it.ID); err != nil {
			e.logger.Warn("could not delete shortcut", "id", it.ID, "error", err)
		}
	case launcher.KindSettings:
		// Empty package means the launcher itself.
		e.emitIntent(Intent{Kind: IntentAppDetails})
	}
}

// TertiaryAction toggles deprioritization.
func (e *Engine) TertiaryAction(it launcher.Item) {
	var err error
	if it.IsDeprioritized {
		err = e.deps.Store.Undeprioritize(it.ID)
	} else {
		err = e.deps.Store.Deprioritize(it.ID)
	}
	if err != nil {
		e.logger.Warn("could not toggle deprioritization", "id", it.ID, "error", err)
	}
}

// QuaternaryAction toggles the ignore-notifications flag.
func (e *Engine) QuaternaryAction(it launcher.Item) {
	var err error
	if it.IgnoreNotifications {
		err = e.deps.Store.UnignoreNotifications(it.ID)
	} else {
		err = e.deps.Store.IgnoreNotifications(it.ID)
	}
	if err != nil {
		e.logger.Warn("could not toggle ignore-notifications", "id", it.ID, "error", err)
	}
}

// RenameAction sets a custom label for the item; an empty label reverts to
// the native one.
func (e *Engine) RenameAction(it launcher.Item, label string) {
	var err error
	if label == "" {
		err = e.deps.Store.Unrename(it.ID)
	} else {
		err = e.deps.Store.Rename(it.ID, label)
	}
	if err != nil {
		e.logger.Warn("could not rename item", "id", it.ID, "error", err)
	}
}

// KeyboardAction handles enter/search from the query field: open the first
// filtered item, or web-search the query when nothing matches. A blank query
// does nothing; dismissing the keyboard must not be mistaken for launch
// intent.
func (e *Engine) KeyboardAction() {
	query := strings.TrimSpace(e.query.Get())
	if query == "" {
		return
	}
	if items := e.items.Get(); len(items) > 0 {
		e.PrimaryAction(items[0])
		return
	}
	e.emitIntent(Intent{Kind: IntentWebSearch, Query: query})
}

// recordLater persists the usage event after the configured delay, so the
// visual re-ordering does not happen mid-launch-animation.
func (e *Engine) recordLater(id string) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if e.recordDelay > 0 {
			select {
			case <-time.After(e.recordDelay):
			case <-e.stop:
				return
			}
		}
		if err := e.deps.Store.RecordLaunch(id); err != nil {
			e.logger.Warn("could not record launch", "id", id, "error", err)
		}
	}()
}

// emitIntent delivers a directive with newest-overwrites semantics: if the
// buffered slot holds an unconsumed directive, it is replaced.
func (e *Engine) emitIntent(in Intent) {
	for {
		select {
		case e.intents <- in:
			return
		default:
			select {
			case <-e.intents:
			default:
			}
		}
	}
}
