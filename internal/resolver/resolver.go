// Package resolver implements the answer pipeline: cache and store
// lookup, ordered provider fallback, reply formatting, and persistence.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"chat-relay/internal/cache"
	"chat-relay/internal/events"
	"chat-relay/internal/format"
	"chat-relay/internal/llm"
	"chat-relay/internal/store"
)

var (
	// ErrEmptyQuestion rejects blank input before any store or
	// provider access.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrAllProvidersDown means every configured backend failed for
	// this request. Nothing is recorded.
	ErrAllProvidersDown = errors.New("all providers unavailable")
)

// Result is one resolved answer. Reply always carries the provider tag
// prefix; Provider is empty when the reply came from cache or store.
type Result struct {
	Reply    string
	Provider string
	Cached   bool
}

// Resolver orchestrates a single Resolve call. It holds no per-call
// state; concurrent calls share only the store, cache, and publisher.
type Resolver struct {
	log       *slog.Logger
	store     store.Store
	cache     cache.Cache
	events    events.Publisher
	providers []llm.Client
	cacheTTL  time.Duration
	group     singleflight.Group
}

// New builds a resolver over the given ordered provider list. Providers
// are tried front to back; put the fastest and cheapest first.
func New(log *slog.Logger, st store.Store, c cache.Cache, pub events.Publisher, providers []llm.Client, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		log:       log,
		store:     st,
		cache:     c,
		events:    pub,
		providers: providers,
		cacheTTL:  cacheTTL,
	}
}

// Resolve answers one question within a session. Identical questions in
// a session are answered once: later asks return the recorded reply
// verbatim without touching a provider. Concurrent identical asks are
// collapsed into a single in-flight resolution.
func (r *Resolver) Resolve(ctx context.Context, session, question string) (Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Result{}, ErrEmptyQuestion
	}

	v, err, _ := r.group.Do(session+"\x00"+question, func() (any, error) {
		res, err := r.resolve(ctx, session, question)
		return res, err
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (r *Resolver) resolve(ctx context.Context, session, question string) (Result, error) {
	key := cache.Key(session, question)

	if reply, found, err := r.cache.GetReply(ctx, key); err != nil {
		r.log.Warn("cache get failed", "err", err)
	} else if found {
		r.log.Info("cache hit", "session", session)
		return Result{Reply: reply, Cached: true}, nil
	}

	reply, found, err := r.store.Lookup(ctx, session, question)
	if err != nil {
		return Result{}, fmt.Errorf("history lookup: %w", err)
	}
	if found {
		r.log.Info("served from history", "session", session)
		if err := r.cache.SetReply(ctx, key, reply, r.cacheTTL); err != nil {
			r.log.Warn("cache set failed", "err", err)
		}
		return Result{Reply: reply, Cached: true}, nil
	}

	for _, p := range r.providers {
		text, err := p.Complete(ctx, question)
		if err != nil {
			// Swallowed on purpose: the next provider is the retry.
			r.log.Warn("provider failed", "provider", p.Name(), "err", err)
			continue
		}
		tagged := fmt.Sprintf("[%s] %s", p.Name(), format.Normalize(text))
		r.persist(ctx, session, question, tagged, p.Name(), key)
		return Result{Reply: tagged, Provider: p.Name()}, nil
	}

	return Result{}, ErrAllProvidersDown
}

// persist records the answer and fans out the cache entry and event.
// A failed record is logged, not returned: the model already produced
// the answer, and losing it to a storage hiccup would cost more than
// the missed cache entry. Cache and event follow only a successful
// record so a later identical ask cannot be served a reply the store
// never kept.
func (r *Resolver) persist(ctx context.Context, session, question, reply, provider, key string) {
	rec, err := r.store.Record(ctx, session, question, reply)
	if err != nil {
		r.log.Error("failed to persist answer", "session", session, "provider", provider, "err", err)
		return
	}
	if err := r.cache.SetReply(ctx, key, reply, r.cacheTTL); err != nil {
		r.log.Warn("cache set failed", "err", err)
	}
	ev := events.ChatRecorded{
		Session:  session,
		Question: question,
		Answer:   reply,
		Provider: provider,
	}
	if err := events.PublishWithRetry(ctx, r.events, ev, 3, 200*time.Millisecond); err != nil {
		r.log.Warn("failed to publish chat event", "record_id", rec.ID, "err", err)
	}
}
