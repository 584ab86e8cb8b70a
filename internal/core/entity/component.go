package entity

// Component is a behavior/data unit owned by exactly one Entity. A
// component carries its own active flag; whether an inactive component
// still acts is enforced by the systems that read the flag, not here.
type Component interface {
	// Initialize is invoked once by InitializeComponents, after every
	// component of the entity has been attached, so it may look up siblings.
	Initialize()
	// Active reports the component's own active flag.
	Active() bool
	// SetActive sets the component's own active flag.
	SetActive(active bool)
	// Owner returns the owning entity, or nil before attachment. The
	// reference is non-owning.
	Owner() *Entity

	attach(owner *Entity)
}

// Base supplies the active flag and the owner back-reference. Component
// implementations must embed it; the interface cannot be satisfied without
// it. The zero value is inactive and unowned - constructors decide the
// initial flag.
type Base struct {
	active bool
	owner  *Entity
}

// Initialize is a no-op; override it on components that need a hook.
func (b *Base) Initialize() {}

func (b *Base) Active() bool { return b.active }

func (b *Base) SetActive(active bool) { b.active = active }

func (b *Base) Owner() *Entity { return b.owner }

func (b *Base) attach(owner *Entity) { b.owner = owner }
