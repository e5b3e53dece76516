// Package debounce откладывает выполнение запросов по ключу и отбрасывает устаревшие.
//
// Каждый вызов Do получает порядковый номер в рамках ключа. Вызов выполняется только если
// за время задержки не пришёл более новый вызов; результат выдаётся только если он всё ещё
// последний. Повтор того же входа, что и у последнего выполненного вызова, возвращает
// сохранённый результат без повторного выполнения.
//
// Состояние ключа живёт ttl с последнего обращения и затем вытесняется.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrSuperseded возвращается вызову, который был вытеснен более новым
var ErrSuperseded = errors.New("debounce: superseded by a newer call")

type state[T any] struct {
	seq        uint64
	lastInput  string
	lastResult T
	hasResult  bool
}

// Group дебаунсер, независимый для каждого ключа
type Group[T any] struct {
	delay time.Duration

	// mu защищает составные операции над состоянием ключа
	mu     sync.Mutex
	states *cache.Cache
}

// New ttl <= 0 отключает вытеснение
func New[T any](delay, ttl time.Duration) *Group[T] {
	cleanup := ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Group[T]{
		delay:  delay,
		states: cache.New(ttl, cleanup),
	}
}

// Do выполняет fn после задержки, если для key не поступило более нового вызова
func (g *Group[T]) Do(ctx context.Context, key, input string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	g.mu.Lock()
	st := g.current(key)
	if st == nil {
		st = &state[T]{}
	}
	// продлевает жизнь ключа
	g.states.SetDefault(key, st)
	st.seq++
	seq := st.seq
	if st.hasResult && st.lastInput == input {
		result := st.lastResult
		g.mu.Unlock()
		return result, nil
	}
	g.mu.Unlock()

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	if !g.isLatest(key, st, seq) {
		return zero, ErrSuperseded
	}

	result, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current(key) != st || st.seq != seq {
		return zero, ErrSuperseded
	}
	st.lastInput = input
	st.lastResult = result
	st.hasResult = true

	return result, nil
}

// Forget сбрасывает состояние ключа
func (g *Group[T]) Forget(key string) {
	g.mu.Lock()
	g.states.Delete(key)
	g.mu.Unlock()
}

// Len число ключей с живым состоянием
func (g *Group[T]) Len() int {
	return g.states.ItemCount()
}

func (g *Group[T]) isLatest(key string, st *state[T], seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current(key) == st && st.seq == seq
}

// current вызывается под mu
func (g *Group[T]) current(key string) *state[T] {
	v, ok := g.states.Get(key)
	if !ok {
		return nil
	}
	st, _ := v.(*state[T])
	return st
}
