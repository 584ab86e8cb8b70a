// Package blueprint loads entity templates from YAML and spawns entities
// from them. A template names the components to attach by registered
// factory name, their construction parameters, and the tags to apply.
package blueprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/simforge/simforge/internal/core/entity"
	"github.com/simforge/simforge/internal/core/world"
	"github.com/simforge/simforge/pkg/concurrent"
	"github.com/simforge/simforge/pkg/sequence"
)

var (
	ErrDuplicateFactory  = errors.New("component factory already registered")
	ErrUnknownComponent  = errors.New("unknown component type")
	ErrMissingName       = errors.New("blueprint has no name")
	ErrDuplicateTemplate = errors.New("duplicate blueprint name")
)

// Definition is the YAML shape of an entity template.
type Definition struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Components []ComponentDef `yaml:"components,omitempty"`
}

// ComponentDef names a registered component factory and its parameters.
type ComponentDef struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Factory constructs a component from template parameters.
type Factory func(params map[string]any) (entity.Component, error)

// Registry maps component type names to factories and loads blueprints
// against them.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a component factory to a type name.
func (r *Registry) Register(name string, f Factory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFactory, name)
	}
	r.factories[name] = f
	return nil
}

// Load parses one YAML blueprint and validates it against the registered
// factories.
func (r *Registry) Load(src io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err = yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if def.Name == "" {
		return nil, ErrMissingName
	}
	for _, cd := range def.Components {
		if _, ok := r.factories[cd.Type]; !ok {
			return nil, fmt.Errorf("%w: %s (blueprint %q)", ErrUnknownComponent, cd.Type, def.Name)
		}
	}
	return &Blueprint{
		def:         def,
		fingerprint: xxhash.Sum64(data),
		registry:    r,
	}, nil
}

// LoadFile loads a single blueprint file.
func (r *Registry) LoadFile(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	bp, err := r.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bp, nil
}

// LoadDir loads every .yaml/.yml file in dir, in parallel, and returns the
// blueprints keyed by template name. Two files declaring the same name is
// an error.
func (r *Registry) LoadDir(dir string) (map[string]*Blueprint, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, de.Name()))
		}
	}

	loaded, err := concurrent.Map(sequence.From(paths), 4, r.LoadFile)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Blueprint, len(loaded))
	for _, bp := range loaded {
		if _, exists := out[bp.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTemplate, bp.Name())
		}
		out[bp.Name()] = bp
	}
	return out, nil
}

// Blueprint is a validated, spawnable entity template.
type Blueprint struct {
	def         Definition
	fingerprint uint64
	registry    *Registry
}

// Name returns the template name.
func (b *Blueprint) Name() string { return b.def.Name }

// Tags returns the tags the template applies.
func (b *Blueprint) Tags() []string { return b.def.Tags }

// Fingerprint is a hash of the source bytes, usable for reload detection.
func (b *Blueprint) Fingerprint() uint64 { return b.fingerprint }

// Spawn creates an entity in w, attaches the template's components in
// declaration order, applies its tags and runs the component initialize
// hooks. On a factory error the half-built entity is destroyed.
func (b *Blueprint) Spawn(w *world.World) (*entity.Entity, error) {
	e := w.NewEntity()
	for _, cd := range b.def.Components {
		factory, ok := b.registry.factories[cd.Type]
		if !ok {
			w.DestroyEntity(e)
			return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, cd.Type)
		}
		c, err := factory(cd.Params)
		if err != nil {
			w.DestroyEntity(e)
			return nil, fmt.Errorf("blueprint %q: component %s: %w", b.def.Name, cd.Type, err)
		}
		e.AddComponent(c)
	}
	for _, tag := range b.def.Tags {
		e.AddTag(tag)
	}
	e.InitializeComponents()
	return e, nil
}
