/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package featureflags

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dynatrace/feature-toggles/internal/log"
	"github.com/dynatrace/feature-toggles/internal/log/attribute"
)

// State describes whether a Provider has successfully loaded its Source.
type State int32

const (
	// Uninitialized is the state before the source was loaded, or after loading it failed. All flags read as disabled.
	Uninitialized State = iota
	// Ready is the state after the source was loaded successfully. There is no way back to Uninitialized.
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ErrSourceUnavailable wraps any error that prevented a Provider from loading its Source.
var ErrSourceUnavailable = errors.New("feature flag source unavailable")

// Reader is the read-only view on feature flags handed to consumers.
type Reader interface {
	// IsEnabled returns the value of the named flag, or false if it is unknown.
	IsEnabled(name string) bool
	// Current returns the latest FlagSet snapshot.
	Current() FlagSet
}

// Provider owns the feature flags of one application instance.
//
// It starts out Uninitialized with an empty FlagSet, loads its Source exactly once, and publishes every change as a
// new FlagSet snapshot. Reads never block and always see a complete snapshot. All writes go through the Provider;
// pass a Reader to code that only needs to look flags up.
type Provider struct {
	source Source

	snapshot atomic.Pointer[FlagSet]
	state    atomic.Int32
	once     sync.Once

	// mu serializes writers. loaded, loadErr and overrides are guarded by it.
	mu        sync.Mutex
	loaded    FlagSet
	loadErr   error
	overrides map[string]bool

	observersMu sync.Mutex
	observers   map[int]func(FlagSet)
	nextID      int
}

var _ Reader = (*Provider)(nil)

// NewProvider creates an Uninitialized Provider serving flags from source.
func NewProvider(source Source) *Provider {
	p := &Provider{
		source:    source,
		overrides: map[string]bool{},
		observers: map[int]func(FlagSet){},
	}
	p.snapshot.Store(&FlagSet{})
	return p
}

// Initialize loads the source if it was not loaded yet and returns the current snapshot.
// Only the first call loads; concurrent calls wait for that load to finish. If loading fails, the Provider stays
// Uninitialized and every flag reads as disabled. The failure is logged and available via Err.
func (p *Provider) Initialize(ctx context.Context) FlagSet {
	p.once.Do(func() {
		p.load(ctx)
	})
	return p.Current()
}

// Start runs Initialize in the background. The returned channel is closed once loading finished, successfully or not.
func (p *Provider) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Initialize(ctx)
	}()
	return done
}

func (p *Provider) load(ctx context.Context) {
	flags, err := p.source.Load(ctx)
	if err != nil {
		p.mu.Lock()
		p.loadErr = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		p.mu.Unlock()
		log.With(attribute.Error(err)).Warn("Failed to load feature flags, all flags are treated as disabled: %s", err)
		return
	}

	p.mu.Lock()
	p.loaded = flags
	next := flags
	if len(p.overrides) > 0 {
		next = flags.Merge(NewFlagSet(p.overrides))
	}
	p.state.Store(int32(Ready))
	p.publishLocked(next)
	p.mu.Unlock()

	log.Debug("Loaded %d feature flags", flags.Len())
	p.notify()
}

// Err returns the error that prevented loading the source, if any.
// It is only meaningful after Initialize returned.
func (p *Provider) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadErr
}

// State returns whether the source was loaded yet.
func (p *Provider) State() State {
	return State(p.state.Load())
}

// Current returns the latest snapshot. Before the source is loaded this is an empty FlagSet.
func (p *Provider) Current() FlagSet {
	return *p.snapshot.Load()
}

// IsEnabled returns the value of the named flag in the current snapshot, or false if the flag is not present.
func (p *Provider) IsEnabled(name string) bool {
	return p.Current().Enabled(name)
}

// Override sets a single flag at runtime. All other flags keep their values.
// The change is held in memory only. Overriding a flag with the value it already has is a no-op and publishes no
// new snapshot.
//
// An override made before the source finished loading takes effect immediately and keeps precedence over the value
// loaded later.
func (p *Provider) Override(name string, value bool) {
	p.mu.Lock()
	p.overrides[name] = value
	current := *p.snapshot.Load()
	if v, ok := current.Get(name); ok && v == value {
		p.mu.Unlock()
		return
	}
	p.publishLocked(current.With(name, value))
	_, known := p.loaded.Get(name)
	p.mu.Unlock()

	if !known && p.State() == Ready {
		log.Debug("Overriding feature flag %q which is not defined by the source", name)
	}
	log.With(attribute.Flag(name, value)).Debug("Overrode feature flag %q: %v", name, value)
	p.notify()
}

// publishLocked replaces the snapshot. p.mu must be held.
func (p *Provider) publishLocked(next FlagSet) {
	p.snapshot.Store(&next)
}

// Subscribe registers fn to be called with the current snapshot every time a new snapshot was published.
// fn is called synchronously from the goroutine that changed the flags and must not block. The returned function
// removes the subscription.
func (p *Provider) Subscribe(fn func(FlagSet)) (unsubscribe func()) {
	p.observersMu.Lock()
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	p.observersMu.Unlock()

	return func() {
		p.observersMu.Lock()
		delete(p.observers, id)
		p.observersMu.Unlock()
	}
}

func (p *Provider) notify() {
	p.observersMu.Lock()
	fns := make([]func(FlagSet), 0, len(p.observers))
	for _, fn := range p.observers {
		fns = append(fns, fn)
	}
	p.observersMu.Unlock()

	current := p.Current()
	for _, fn := range fns {
		fn(current)
	}
}
