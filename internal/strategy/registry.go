package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-guess/internal/prompt"
)

// Kind names a registered decision source (e.g., "human", "random").
type Kind string

const (
	KindHuman  Kind = "human"
	KindRandom Kind = "random"
)

// Deps carries what a factory may need to build a source.
type Deps struct {
	Seed      int64
	Prompter  prompt.Prompter
	Label     string
	Logger    *log.Logger
	OnFailure func(error)
}

// Factory builds a decision source.
type Factory func(deps Deps) (Source, error)

// Info describes a registered source.
type Info struct {
	Kind        Kind
	Description string
	Interactive bool // Whether the source needs a prompter
}

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[Kind]entry)
	mu      sync.RWMutex
)

// Register adds a source factory.
// Panics if a source with the same kind is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.Kind]; exists {
		panic(fmt.Sprintf("strategy: source %q already registered", info.Kind))
	}
	entries[info.Kind] = entry{info: info, factory: f}
}

// List returns all registered sources, sorted by kind.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Lookup returns the description of a registered source.
func Lookup(kind Kind) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[kind]
	return e.info, ok
}

// Create builds a source by kind.
func Create(kind Kind, deps Deps) (Source, error) {
	mu.RLock()
	e, ok := entries[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("strategy: unknown source %q", kind)
	}
	return e.factory(deps)
}

// Exists checks if a source kind is registered.
func Exists(kind Kind) bool {
	_, ok := Lookup(kind)
	return ok
}

func init() {
	Register(Info{
		Kind:        KindRandom,
		Description: "CPU player guessing uniformly at random",
	}, func(deps Deps) (Source, error) {
		return NewRandom(deps.Seed), nil
	})

	Register(Info{
		Kind:        KindHuman,
		Description: "Human player typing guesses at a prompt",
		Interactive: true,
	}, func(deps Deps) (Source, error) {
		if deps.Prompter == nil {
			return nil, fmt.Errorf("strategy: %q source needs a prompter", KindHuman)
		}
		return NewInteractive(deps.Prompter,
			WithLabel(deps.Label),
			WithLogger(deps.Logger),
			WithFailureHandler(deps.OnFailure),
		), nil
	})
}
