package search

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/frontier"
	"github.com/kousik-kr/flexiroute/label"
	"github.com/kousik-kr/flexiroute/labelset"
)

// Result is the Driver's raw output: the per-direction Arenas and Label
// Sets populated during the run, the discovered Meeting Set, and the best
// combined elapsed cost found across it. The Join step (C6) consumes this
// directly; it is not a caller-facing type.
type Result struct {
	ForwardArena    *label.Arena
	BackwardArena   *label.Arena
	Labels          *labelset.Store
	MeetingNodes    []int32
	BestMeetingCost float64
}

// Run executes one bidirectional, label-setting, time-dependent search from
// source to dest, departing at depart (minutes-from-midnight), bounded by
// budget (the elapsed-cost ceiling), under mode's objective vector
// (spec.md §4.5). It alternates forward and backward expansions, prunes via
// Pareto dominance within each (node, direction) Label Set, and stops once
// the two frontiers can no longer improve on the best meeting cost found.
func Run(ctx context.Context, store *core.Store, mode labelset.RoutingMode, source, dest int32, depart, budget float64, cfg SearchConfig) (*Result, error) {
	srcNode, err := store.Node(source)
	if err != nil {
		return nil, err
	}
	dstNode, err := store.Node(dest)
	if err != nil {
		return nil, err
	}
	if err := store.Validate(); err != nil {
		return nil, ErrInternalInvariantViolated
	}

	d := &driver{
		store:     store,
		cfg:       cfg,
		mode:      mode,
		source:    source,
		dest:      dest,
		budget:    budget,
		heuristic: NewHeuristic(store, dstNode, srcNode, store.MaxSpeed(), cfg.MaxSpeedOverride),

		fwdArena: label.NewArena(256),
		bwdArena: label.NewArena(256),
		fwdQueue: frontier.New(store.NumNodes()),
		bwdQueue: frontier.New(store.NumNodes()),
		labels:   labelset.NewStore(store.NumNodes(), mode),

		meeting:         make(map[int32]struct{}),
		bestMeetingCost: math.Inf(1),
		lastExpanded:    [2]float64{math.Inf(-1), math.Inf(-1)},
	}

	seedFwd := label.Label{Node: source, Dir: label.Forward, Time: depart, LastEdge: label.NoEdge, Pred: label.NoRef}
	fwdRef := d.fwdArena.Add(seedFwd)
	d.labels.Insert(fwdRef, seedFwd)
	d.fwdQueue.Push(frontier.Item{Ref: fwdRef, Node: source, Cost: 0})

	// The backward seed's Time is a departure deadline: the latest plausible
	// arrival at dest given the query's own budget, from which
	// InverseTravelTime walks backward toward source (spec.md §4.5).
	seedBwd := label.Label{Node: dest, Dir: label.Backward, Time: depart + budget, LastEdge: label.NoEdge, Pred: label.NoRef}
	bwdRef := d.bwdArena.Add(seedBwd)
	d.labels.Insert(bwdRef, seedBwd)
	d.bwdQueue.Push(frontier.Item{Ref: bwdRef, Node: dest, Cost: 0})

	var runErr error
	if cfg.Parallel {
		runErr = d.runParallel(ctx)
	} else {
		runErr = d.runSequential(ctx)
	}
	if runErr != nil {
		return nil, runErr
	}

	if err := d.failure(); err != nil {
		return nil, err
	}

	if len(d.meeting) == 0 {
		if d.stepCapped {
			return nil, ErrBudgetExhausted
		}
		return nil, ErrUnreachable
	}

	// d.meeting is a map; range order is randomized, so the Meeting Set is
	// sorted here to keep Result (and everything join.Build derives from
	// it) deterministic across runs on the same Graph (spec.md §8).
	nodes := make([]int32, 0, len(d.meeting))
	for n := range d.meeting {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return &Result{
		ForwardArena:    d.fwdArena,
		BackwardArena:   d.bwdArena,
		Labels:          d.labels,
		MeetingNodes:    nodes,
		BestMeetingCost: d.bestMeetingCost,
	}, nil
}

// driver holds the mutable state of one Run call. Its Label Sets and
// bestMeetingCost/meeting fields are shared between the two directions;
// under the sequential Driver that sharing is single-threaded by
// construction, under the parallel Driver it goes through mu.
type driver struct {
	store     *core.Store
	cfg       SearchConfig
	mode      labelset.RoutingMode
	source    int32
	dest      int32
	budget    float64
	heuristic Heuristic

	fwdArena, bwdArena *label.Arena
	fwdQueue, bwdQueue *frontier.Queue
	labels             *labelset.Store

	mu              sync.Mutex
	meeting         map[int32]struct{}
	bestMeetingCost float64
	stepCapped      bool
	assertErr       error
	lastExpanded    [2]float64 // per label.Direction, for the Debug monotonicity check
}

func (d *driver) markStepCapped() {
	d.mu.Lock()
	d.stepCapped = true
	d.mu.Unlock()
}

func (d *driver) currentBest() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bestMeetingCost
}

// fail records the first debug-assertion violation and logs it, per
// SearchConfig.Debug's assertion pass (spec.md §7): violations degrade to a
// logged warning and an InternalInvariantViolated failure rather than a
// panic, grounded on flow.Dinic's verbose-logging call-site idiom.
func (d *driver) fail(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.assertErr != nil {
		return
	}
	d.assertErr = ErrInternalInvariantViolated
	log.Printf("search: internal invariant violated: "+format, args...)
}

func (d *driver) failure() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.assertErr
}

// assertMonotone checks, under Debug, that successive expansions within one
// direction never pop a strictly cheaper elapsed cost than the last (the
// label-setting frontier must expand in non-decreasing cost order).
func (d *driver) assertMonotone(dir label.Direction, cost float64) {
	const epsilon = 1e-9
	d.mu.Lock()
	prev := d.lastExpanded[dir]
	d.lastExpanded[dir] = cost
	d.mu.Unlock()

	if cost < prev-epsilon {
		d.fail("direction %d expanded cost %g after %g (non-monotone)", dir, cost, prev)
	}
}

// assertNonDomination re-checks node's (dir) Label Set for a mutual-
// domination pair, under Debug, right after an Insert.
func (d *driver) assertNonDomination(dir label.Direction, node int32) {
	if err := d.labels.ValidateNode(dir, node); err != nil {
		d.fail("%s", err)
	}
}

func (d *driver) recordMeeting(dir label.Direction, node int32, elapsed float64) {
	oppDir := opposite(dir)
	oppRefs := d.labels.All(oppDir, node)
	oppArena := d.arenaFor(oppDir)
	oppBest, ok := labelset.BestBy(oppArena, oppRefs, func(l label.Label) float64 { return l.ElapsedCost })
	if !ok {
		return
	}
	total := elapsed + oppArena.Get(oppBest).ElapsedCost

	d.mu.Lock()
	defer d.mu.Unlock()
	d.meeting[node] = struct{}{}
	if total < d.bestMeetingCost {
		d.bestMeetingCost = total
	}
}

func (d *driver) queueFor(dir label.Direction) *frontier.Queue {
	if dir == label.Forward {
		return d.fwdQueue
	}
	return d.bwdQueue
}

func (d *driver) arenaFor(dir label.Direction) *label.Arena {
	if dir == label.Forward {
		return d.fwdArena
	}
	return d.bwdArena
}

func opposite(dir label.Direction) label.Direction {
	if dir == label.Forward {
		return label.Backward
	}
	return label.Forward
}

// runSequential alternates forward/backward expansion steps on the calling
// goroutine, comparing the two frontiers' next-to-pop costs each iteration
// (spec.md §4.5 "Direction alternation"), grounded on the teacher's
// PeekDist-based runCHDijkstra alternation generalized from a single best
// distance to a shared best meeting cost across Pareto Label Sets.
func (d *driver) runSequential(ctx context.Context) error {
	steps := 0
	for {
		steps++
		if steps > d.cfg.StepCap {
			d.markStepCapped()
			break
		}
		if steps&255 == 0 {
			if err := ctx.Err(); err != nil {
				return ErrCanceled
			}
		}
		if d.cfg.Debug {
			if err := d.failure(); err != nil {
				return err
			}
		}

		fwdCost, fwdOk := d.fwdQueue.Peek()
		bwdCost, bwdOk := d.bwdQueue.Peek()
		if !fwdOk && !bwdOk {
			break
		}
		if fwdOk && bwdOk && fwdCost+bwdCost >= d.bestMeetingCost {
			break
		}

		dir := d.chooseDirection(fwdOk, fwdCost, bwdOk, bwdCost)
		d.expandOne(dir)
	}
	return nil
}

// runParallel runs the forward and backward expansions on independent
// goroutines, each a self-contained loop over its own queue, synchronized
// only through the shared labelset.Store and driver.mu (spec.md §5's
// optional parallel Driver: "Meeting Set and current best meeting cost C*
// are shared").
func (d *driver) runParallel(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.runOneSide(gctx, label.Forward) })
	g.Go(func() error { return d.runOneSide(gctx, label.Backward) })
	return g.Wait()
}

func (d *driver) runOneSide(ctx context.Context, dir label.Direction) error {
	q := d.queueFor(dir)
	steps := 0
	for {
		steps++
		if steps > d.cfg.StepCap {
			d.markStepCapped()
			return nil
		}
		if steps&255 == 0 {
			if err := ctx.Err(); err != nil {
				return ErrCanceled
			}
		}
		if d.cfg.Debug {
			if err := d.failure(); err != nil {
				return err
			}
		}

		cost, ok := q.Peek()
		if !ok {
			return nil
		}
		if cost >= d.currentBest() {
			return nil
		}
		d.expandOne(dir)
	}
}

func (d *driver) chooseDirection(fwdOk bool, fwdCost float64, bwdOk bool, bwdCost float64) label.Direction {
	switch {
	case !fwdOk:
		return label.Backward
	case !bwdOk:
		return label.Forward
	case fwdCost < bwdCost:
		return label.Forward
	case bwdCost < fwdCost:
		return label.Backward
	case d.fwdQueue.Size() <= d.bwdQueue.Size():
		return label.Forward
	default:
		return label.Backward
	}
}

// expandOne pops the cheapest pending item from dir's queue and relaxes its
// incident edges. If the popped node's frontier count has already fallen to
// zero, the item is discarded instead (spec.md §4.5 step 1); see
// frontier.Queue's doc comment for why this is an approximate liveness
// signal rather than a precise per-entry flag.
func (d *driver) expandOne(dir label.Direction) {
	q := d.queueFor(dir)
	arena := d.arenaFor(dir)

	top, ok := q.PeekItem()
	if !ok {
		return
	}
	if q.FrontierCount(top.Node) == 0 {
		q.Pop()
		return
	}
	item, _ := q.Pop()
	L := arena.Get(item.Ref)

	if d.cfg.Debug {
		d.assertMonotone(dir, item.Cost)
	}

	var edgeIdxs []int32
	var err error
	if dir == label.Forward {
		edgeIdxs, err = d.store.NeighborsOut(L.Node)
	} else {
		edgeIdxs, err = d.store.NeighborsIn(L.Node)
	}
	if err != nil {
		return
	}

	for _, edgeIdx := range edgeIdxs {
		d.relax(dir, L, item.Ref, edgeIdx)
	}
}

// relax extends L across edgeIdx, building and (if not dominated) inserting
// the resulting candidate Label (spec.md §4.5 step 2).
func (d *driver) relax(dir label.Direction, L label.Label, ref label.Ref, edgeIdx int32) {
	e, err := d.store.Edge(edgeIdx)
	if err != nil {
		return
	}

	var farNode int32
	var newTime, traversal, widthCheckTime float64
	if dir == label.Forward {
		farNode = e.To
		tt, terr := d.store.TravelTime(edgeIdx, L.Time)
		if terr != nil {
			return
		}
		newTime = L.Time + tt
		traversal = tt
		widthCheckTime = L.Time
	} else {
		farNode = e.From
		dep, terr := d.store.InverseTravelTime(edgeIdx, L.Time)
		if terr != nil {
			return
		}
		newTime = dep
		traversal = L.Time - dep
		widthCheckTime = dep
	}
	if traversal < 0 {
		return
	}

	elapsed := L.ElapsedCost + traversal
	if elapsed > d.budget {
		return
	}

	rightTurns, sharpTurns := L.RightTurns, L.SharpTurns
	if L.LastEdge != label.NoEdge {
		var turn core.TurnKind
		var terr error
		if dir == label.Forward {
			turn, terr = d.store.ClassifyTurn(L.LastEdge, edgeIdx)
		} else {
			turn, terr = d.store.ClassifyTurn(edgeIdx, L.LastEdge)
		}
		if terr != nil {
			return
		}
		switch turn {
		case core.Uturn:
			return
		case core.Right:
			rightTurns++
		case core.Sharp:
			sharpTurns++
		}
	}

	wide, err := d.store.IsWide(edgeIdx, widthCheckTime)
	if err != nil {
		return
	}
	widenessSum := L.WidenessSum
	if wide {
		widenessSum += e.Distance
	}

	h := d.heuristic(farNode, dir)
	if elapsed+h > d.budget {
		return
	}

	q := d.queueFor(dir)
	best := d.currentBest()
	if q.FrontierCount(farNode) > int32(d.cfg.FrontierThreshold) && !math.IsInf(best, 1) {
		if elapsed+h > best*d.cfg.TighteningFactor {
			return
		}
	}

	candidate := label.Label{
		Node:        farNode,
		Dir:         dir,
		Time:        newTime,
		ElapsedCost: elapsed,
		WidenessSum: widenessSum,
		DistanceSum: L.DistanceSum + e.Distance,
		RightTurns:  rightTurns,
		SharpTurns:  sharpTurns,
		LastEdge:    edgeIdx,
		Pred:        ref,
	}

	arena := d.arenaFor(dir)
	newRef := arena.Add(candidate)
	retained, displaced := d.labels.Insert(newRef, candidate)
	if !retained {
		return
	}
	if d.cfg.Debug {
		d.assertNonDomination(dir, farNode)
	}
	for range displaced {
		q.Discount(farNode)
	}
	q.Push(frontier.Item{Ref: newRef, Node: farNode, Cost: elapsed})

	if d.labels.NonEmpty(opposite(dir), farNode) {
		d.recordMeeting(dir, farNode, elapsed)
	}
}
