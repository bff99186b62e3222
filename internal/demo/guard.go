package demo

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// Guard is the demo actor: a sentry defending a gate.
type Guard struct {
	domain.ActionState

	Name    string
	HP      int
	Enemies int
	Ammo    int

	mu     sync.Mutex
	timers []*time.Timer
}

// MaxAmmo is the magazine size.
const MaxAmmo = 3

// NewGuard creates a guard with a full magazine.
func NewGuard(name string, hp, enemies int) *Guard {
	return &Guard{
		Name:    name,
		HP:      hp,
		Enemies: enemies,
		Ammo:    MaxAmmo,
	}
}

// completeAfter finishes the current long-running action after d.
func (g *Guard) completeAfter(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.timers = append(g.timers, time.AfterFunc(d, g.Complete))
}

// Close stops pending action timers.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
}

// Brain builds the guard's behavior tree.
type Brain struct {
	src    tree.Source
	out    *Printer
	patrol time.Duration
}

// NewBrain creates a brain drawing randomness from src and narrating on out.
func NewBrain(src tree.Source, out *Printer, patrol time.Duration) *Brain {
	return &Brain{src: src, out: out, patrol: patrol}
}

// Tree returns the root node:
//
//	Sequence
//	├── scan
//	└── Selector(alive?)
//	    ├── IndexSelector(threat level)
//	    │   ├── RandomSelector: patrol | idle | whistle
//	    │   ├── Sequence: aim, shoot
//	    │   └── RandomSequence: shout, reload, fall back
//	    └── collapse
func (b *Brain) Tree() domain.Node {
	calm := tree.NewRandomSelector([]domain.Node{
		b.action("patrol", b.patrolAction),
		b.say("idle", "leans on the spear"),
		b.say("idle", "whistles a tune"),
	}, tree.WithSource(b.src))

	duel := tree.NewSequence(
		b.say("attack", "takes aim"),
		b.action("shoot", b.shoot),
	)

	overwhelmed := tree.NewRandomSequence([]domain.Node{
		b.say("alarm", "shouts for reinforcements"),
		b.action("reload", b.reload),
		b.action("fall back", b.fallBack),
	}, tree.WithSource(b.src))

	return tree.NewSequence(
		b.action("scan", b.scan),
		tree.NewSelector(
			b.action("alive?", alive),
			tree.NewIndexSelector(b.action("threat level", threatLevel), calm, duel, overwhelmed),
			b.say("down", "collapses"),
		),
	)
}

func (b *Brain) action(name string, fn func(*Guard) (any, error)) *tree.Action {
	return tree.NewNamedAction(name, func(_ context.Context, a domain.Actor) (any, error) {
		return fn(a.(*Guard))
	})
}

func (b *Brain) say(tag, msg string) *tree.Action {
	return b.action(msg, func(g *Guard) (any, error) {
		b.out.Say(tag, g.Name, msg)
		return nil, nil
	})
}

// scan updates the world: enemies come and go, and each one deals damage.
func (b *Brain) scan(g *Guard) (any, error) {
	switch b.src.IntN(4) {
	case 0:
		g.Enemies++
	case 1:
		if g.Enemies > 0 {
			g.Enemies--
		}
	}
	g.HP = max(g.HP-g.Enemies, 0)
	return nil, nil
}

func alive(g *Guard) (any, error) {
	return g.HP > 0, nil
}

// threatLevel maps the number of enemies to 0 (calm), 1 (duel) or 2 (overwhelmed).
func threatLevel(g *Guard) (any, error) {
	return min(g.Enemies, 2), nil
}

func (b *Brain) patrolAction(g *Guard) (any, error) {
	b.out.Say("patrol", g.Name, "starts a patrol round")
	g.Hold()
	g.completeAfter(b.patrol)
	return nil, nil
}

func (b *Brain) shoot(g *Guard) (any, error) {
	if g.Ammo == 0 {
		b.out.Say("attack", g.Name, "is out of ammo")
		return false, nil
	}
	g.Ammo--
	g.Enemies--
	b.out.Say("attack", g.Name, "hits an intruder")
	return true, nil
}

func (b *Brain) reload(g *Guard) (any, error) {
	g.Ammo = MaxAmmo
	b.out.Say("reload", g.Name, "reloads")
	return nil, nil
}

func (b *Brain) fallBack(g *Guard) (any, error) {
	b.out.Say("retreat", g.Name, "falls back to the gate")
	return nil, nil
}
