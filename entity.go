package pushbox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Tag identifies an entity's gameplay role. A tag is fixed at spawn time
// and never migrates between bodies.
type Tag uint8

const (
	TagNone Tag = iota
	TagPlayer
	TagBox
	TagGround
	TagBullet
)

// String returns the tag name for debug output.
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagBox:
		return "box"
	case TagGround:
		return "ground"
	case TagBullet:
		return "bullet"
	default:
		return "none"
	}
}

// BodyRef associates an entity with its physics body and the half-extents
// used to derive its AABB. The body itself is owned by the World.
type BodyRef struct {
	Body         *cp.Body
	HalfW, HalfH float64
}

// Visual holds per-entity render state, mutated in place each frame.
// Pulse is a render-only scale multiplier (1 = neutral) driven by the
// crate's touch animation.
type Visual struct {
	Tint     Color
	Texture  *ebiten.Image
	Textured bool
	Pulse    float64
}

var (
	tagComponent    = donburi.NewComponentType[Tag]()
	bodyComponent   = donburi.NewComponentType[BodyRef]()
	visualComponent = donburi.NewComponentType[Visual]()
)

// Registry is the entity table: an explicit body-to-attributes mapping
// owned by the application, instead of pointers stashed in the physics
// engine's user-data slot. Entities are iterated in spawn order, which is
// also the draw order.
type Registry struct {
	world donburi.World
	query *donburi.Query
	order []donburi.Entity
}

// NewRegistry creates an empty entity table.
func NewRegistry() *Registry {
	return &Registry{
		world: donburi.NewWorld(),
		query: donburi.NewQuery(filter.Contains(tagComponent, bodyComponent, visualComponent)),
	}
}

// Spawn registers a body under the given tag with its initial visual state.
// Pulse defaults to neutral when left zero.
func (r *Registry) Spawn(tag Tag, body *cp.Body, halfW, halfH float64, vis Visual) donburi.Entity {
	if vis.Pulse == 0 {
		vis.Pulse = 1
	}
	entity := r.world.Create(tagComponent, bodyComponent, visualComponent)
	entry := r.world.Entry(entity)
	donburi.SetValue(entry, tagComponent, tag)
	donburi.SetValue(entry, bodyComponent, BodyRef{Body: body, HalfW: halfW, HalfH: halfH})
	donburi.SetValue(entry, visualComponent, vis)
	r.order = append(r.order, entity)
	return entity
}

// Tag returns the entity's fixed gameplay tag.
func (r *Registry) Tag(e donburi.Entity) Tag {
	return *donburi.Get[Tag](r.world.Entry(e), tagComponent)
}

// Body returns the entity's body reference.
func (r *Registry) Body(e donburi.Entity) BodyRef {
	return *donburi.Get[BodyRef](r.world.Entry(e), bodyComponent)
}

// Visual returns a pointer to the entity's mutable visual state.
func (r *Registry) Visual(e donburi.Entity) *Visual {
	return donburi.Get[Visual](r.world.Entry(e), visualComponent)
}

// Position returns the entity's current world position.
func (r *Registry) Position(e donburi.Entity) Vec2 {
	pos := r.Body(e).Body.Position()
	return Vec2{X: pos.X, Y: pos.Y}
}

// AABB computes the entity's bounding box, inflated by margin, from its
// current body position. Always derived fresh; never cached.
func (r *Registry) AABB(e donburi.Entity, margin float64) AABB {
	ref := r.Body(e)
	return AABBFromCenter(r.Position(e), ref.HalfW, ref.HalfH, margin)
}

// FirstWithTag returns the first entity spawned under tag.
func (r *Registry) FirstWithTag(tag Tag) (donburi.Entity, bool) {
	for _, e := range r.order {
		if r.Tag(e) == tag {
			return e, true
		}
	}
	var zero donburi.Entity
	return zero, false
}

// Each calls fn for every entity in spawn order.
func (r *Registry) Each(fn func(e donburi.Entity)) {
	for _, e := range r.order {
		fn(e)
	}
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	return r.query.Count(r.world)
}
