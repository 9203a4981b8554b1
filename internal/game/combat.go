package game

import (
	"log"

	"chosenoffset.com/endofdayz/internal/anim"
	"chosenoffset.com/endofdayz/internal/dayz"
	"chosenoffset.com/endofdayz/internal/world/grid"
)

// tryFireCrossbow shoots the first zombie in the given direction when the
// player holds an active crossbow.
func (g *Game) tryFireCrossbow(offset grid.Position) {
	if !g.World.Inventory().HasActive(dayz.KindCrossbow) {
		return
	}
	start, ok := g.World.Grid().FindPlayer()
	if !ok {
		return
	}

	target, entity, ok := g.World.Grid().FirstInDirection(start, offset)
	if !ok || !entity.Kind.IsZombie() {
		return
	}
	g.shootAtZombie(start, target, entity)
}

// shootAtZombie flies a bolt from the player to the zombie. The zombie is
// frozen while the bolt is in the air and removed when it lands.
func (g *Game) shootAtZombie(start, target grid.Position, zombie *dayz.Entity) {
	bolt, err := anim.NewProjectile(g.Geometry, start, target, g.Config.Projectile())
	if err != nil {
		log.Printf("Warning: Cannot shoot: %v", err)
		return
	}

	gen := g.generation
	bolt.OnStart(zombie.Freeze)
	bolt.OnFinish(func() {
		if gen != g.generation {
			return
		}
		// The zombie may have been removed or replaced while the bolt flew.
		if g.World.Grid().Get(target) == zombie {
			g.World.Grid().Remove(target)
		}
		if !g.rewinding {
			g.redraw(g.World)
		}
	})

	if err := g.Animator.Play(bolt); err != nil {
		log.Printf("Warning: Failed to play bolt: %v", err)
	}
}
