package story

import (
	"fmt"
	"sort"

	"github.com/vellum-ui/vellum"
)

// Story is one named component example. Build returns a fresh
// descriptor tree each call; stories with internal state (counters,
// selections) close over it and resubmit through the engine like any
// host would.
type Story struct {
	Name        string
	Description string
	Build       func() *vellum.Descriptor
}

// Registry holds named stories for browsing.
type Registry struct {
	stories map[string]Story
}

// NewRegistry returns an empty story registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds a story. Registering a duplicate name is a programmer
// error and panics at startup rather than shadowing silently.
func (r *Registry) Register(s Story) {
	if s.Name == "" || s.Build == nil {
		panic("story: Register requires a name and a Build func")
	}
	if _, exists := r.stories[s.Name]; exists {
		panic(fmt.Sprintf("story: duplicate story %q", s.Name))
	}
	r.stories[s.Name] = s
}

// Get returns the named story.
func (r *Registry) Get(name string) (Story, bool) {
	s, ok := r.stories[name]
	return s, ok
}

// All returns every story sorted by name.
func (r *Registry) All() []Story {
	out := make([]Story, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	return len(r.stories)
}
