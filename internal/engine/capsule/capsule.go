// Package capsule moves the character root through the level and reports
// trigger-volume transitions.
package capsule

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// TriggerSource lists the trigger volumes containing a point.
type TriggerSource interface {
	Overlapping(p math.Vec3) []spatial.Trigger
}

// TriggerListener receives trigger enter/exit events.
type TriggerListener interface {
	OnTriggerEnter(c spatial.Category)
	OnTriggerExit(c spatial.Category)
}

// Config holds capsule dimensions.
type Config struct {
	Radius float32 `yaml:"radius"`
	Skin   float32 `yaml:"skin"`
}

// DefaultConfig returns a capsule sized for the default skeleton.
func DefaultConfig() Config {
	return Config{Radius: 0.3, Skin: 0.02}
}

// Controller is a kinematic character mover. Horizontal motion is swept
// against blocking geometry on mask; vertical motion is applied as given.
type Controller struct {
	cfg       Config
	transform math.Transform
	query     spatial.Query
	triggers  TriggerSource
	mask      spatial.LayerMask

	inside    map[string]spatial.Trigger
	listeners []TriggerListener
	log       *zap.Logger
}

// New creates a controller at the given placement. triggers may be nil.
func New(cfg Config, start math.Transform, query spatial.Query, triggers TriggerSource, mask spatial.LayerMask) *Controller {
	return &Controller{
		cfg:       cfg,
		transform: start,
		query:     query,
		triggers:  triggers,
		mask:      mask,
		inside:    make(map[string]spatial.Trigger),
		log:       logger.Named("capsule"),
	}
}

// AddListener registers a trigger listener.
func (c *Controller) AddListener(l TriggerListener) {
	c.listeners = append(c.listeners, l)
}

// Transform returns the current root placement.
func (c *Controller) Transform() math.Transform {
	return c.transform
}

// SetRotation sets the root orientation.
func (c *Controller) SetRotation(q math.Quat) {
	c.transform.Rotation = q
}

// Move displaces the root, stopping horizontal travel at the first blocking
// surface, then refreshes trigger overlap.
func (c *Controller) Move(displacement math.Vec3) {
	horizontal := displacement.Flat()
	if dist := horizontal.Length(); dist > 0 && c.query != nil {
		if hit, ok := c.query.SphereCast(c.transform.Position, horizontal, c.cfg.Radius, dist+c.cfg.Skin, c.mask); ok && hit.Category != spatial.CategoryGround {
			allowed := hit.Distance - c.cfg.Skin
			if allowed < 0 {
				allowed = 0
			}
			horizontal = horizontal.Normalize().Scale(allowed)
			c.log.Debug("blocked",
				zap.String("collider", hit.Collider),
				zap.Float32("allowed", allowed),
				zap.Float32("requested", dist),
			)
		}
	}

	c.transform.Position = c.transform.Position.Add(horizontal).Add(math.Vec3{Y: displacement.Y})
	c.updateTriggers()
}

func (c *Controller) updateTriggers() {
	if c.triggers == nil {
		return
	}
	current := make(map[string]spatial.Trigger)
	for _, t := range c.triggers.Overlapping(c.transform.Position) {
		current[t.Name] = t
	}

	for name, t := range current {
		if _, was := c.inside[name]; !was {
			c.log.Debug("trigger enter", zap.String("trigger", name), zap.Stringer("category", t.Category))
			for _, l := range c.listeners {
				l.OnTriggerEnter(t.Category)
			}
		}
	}
	for name, t := range c.inside {
		if _, still := current[name]; !still {
			c.log.Debug("trigger exit", zap.String("trigger", name), zap.Stringer("category", t.Category))
			for _, l := range c.listeners {
				l.OnTriggerExit(t.Category)
			}
		}
	}
	c.inside = current
}
