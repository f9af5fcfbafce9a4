// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
)

var (
	_ PathFinder = FindShortestPath
	_ PathFinder = FindShortestPathUnidirectional
)

// bidirectional holds both frontiers and the best meeting found so far.
type bidirectional struct {
	cfg      *Options
	fwd, bwd *frontier

	best     float64
	touch    core.VertexID
	hasTouch bool
}

// FindShortestPath returns a minimum-weight path source→…→target using
// bidirectional Dijkstra.
//
// Errors:
//   - ErrNoGraph if g is nil.
//   - ErrNoSourceVertex and/or ErrNoTargetVertex (joined) for absent endpoints.
//   - ErrNoPath if target is unreachable.
//   - ErrNoMemory if a search structure hit the WithMaxEntries limit.
//
// The returned path is nil whenever err is non-nil. source == target returns
// the single-vertex path without building any search state.
//
// Complexity: O((V+E)·log_d V) worst case; typically far fewer vertices are
// closed than a unidirectional search would close.
func FindShortestPath(g Graph, source, target core.VertexID, opts ...Option) (*vlist.List[core.VertexID], error) {
	if err := validate(g, source, target); err != nil {
		return nil, err
	}
	cfg := resolve(opts)
	if source == target {
		return single(source, cfg)
	}

	s := &bidirectional{cfg: cfg}
	defer s.release()

	var err error
	if s.fwd, err = newFrontier(Forward, source, g.Children, cfg); err != nil {
		return nil, err
	}
	if s.bwd, err = newFrontier(Backward, target, g.Parents, cfg); err != nil {
		return nil, err
	}

	for s.fwd.open.Len() > 0 && s.bwd.open.Len() > 0 {
		if s.hasTouch && s.fwd.minDistance()+s.bwd.minDistance() > s.best {
			break
		}
		if s.fwd.size() <= s.bwd.size() {
			err = s.expand(s.fwd, s.bwd)
		} else {
			err = s.expand(s.bwd, s.fwd)
		}
		if err != nil {
			return nil, err
		}
	}

	// One frontier may drain after a meeting was recorded; the meeting is
	// still optimal because every vertex reachable on that side is closed.
	if !s.hasTouch {
		s.finish(source, target, ErrNoPath)
		return nil, ErrNoPath
	}

	path := vlist.New[core.VertexID](vlist.WithMaxLen(cfg.MaxEntries))
	if err = traceback(s.fwd.parent, s.touch, path.PushFront); err != nil {
		return nil, err
	}
	if next := s.bwd.parent.MustGet(s.touch); next != s.touch {
		if err = traceback(s.bwd.parent, next, path.PushBack); err != nil {
			return nil, err
		}
	}
	if cfg.Stats != nil {
		cfg.Stats.Length = s.best
	}
	s.finish(source, target, nil)

	return path, nil
}

// expand closes the minimum vertex of own, relaxes its edges, and updates the
// best meeting through every scanned neighbor that opp has already reached.
func (s *bidirectional) expand(own, opp *frontier) error {
	u, du, err := own.pop()
	if err != nil {
		return err
	}
	s.expanded(own.dir, u)

	for v, w := range own.edges(u) {
		if !own.closed.Contains(v) {
			improved, err := own.relax(u, v, du+w)
			if err != nil {
				return err
			}
			if improved && s.cfg.Stats != nil {
				s.cfg.Stats.Relaxed++
			}
		}

		dOpp, ok := opp.dist.Lookup(v)
		if !ok {
			continue
		}
		// Use v's own-side distance after relaxation so the length always
		// matches the path traceback will produce.
		if length := own.dist.MustGet(v) + dOpp; !s.hasTouch || length < s.best {
			s.best, s.touch, s.hasTouch = length, v, true
			if s.cfg.Stats != nil {
				s.cfg.Stats.MeetingUpdates++
			}
		}
	}

	return nil
}

func (s *bidirectional) expanded(dir Direction, v core.VertexID) {
	if s.cfg.OnExpand != nil {
		s.cfg.OnExpand(dir, v)
	}
	if st := s.cfg.Stats; st != nil {
		if dir == Forward {
			st.ExpandedForward++
		} else {
			st.ExpandedBackward++
		}
	}
}

func (s *bidirectional) finish(source, target core.VertexID, err error) {
	s.cfg.Logger.Debug("bidirectional search finished",
		"source", source,
		"target", target,
		"status", StatusOf(err).String(),
		"closed_forward", s.fwd.closed.Len(),
		"closed_backward", s.bwd.closed.Len(),
		"length", s.best,
	)
}

// release frees both frontiers. Idempotent.
func (s *bidirectional) release() {
	s.fwd.release()
	s.bwd.release()
}
