package transition

import (
	"sort"
	"time"

	"github.com/five82/slicer/internal/clip"
)

// DefaultDuration matches the reveal timing of the original slices.
const DefaultDuration = 450 * time.Millisecond

// Engine animates one clip region per key and notifies a single listener
// when each transition completes.
//
// Engine is not safe for concurrent use; it is driven from one goroutine
// (the UI update loop) and listeners run on that goroutine inside Advance.
type Engine struct {
	Duration time.Duration
	Easing   clip.Easing

	seq    uint64
	tracks map[string]*track
}

type track struct {
	value   clip.Region // settled value, or start value while animating
	to      clip.Region
	start   time.Time
	end     time.Time
	seq     uint64
	onDone  func()
	running bool
}

// New returns an engine with the given timing. A zero duration makes every
// transition complete on the next Advance.
func New(d time.Duration, e clip.Easing) *Engine {
	if e.Name == "" {
		e = clip.Ease
	}
	return &Engine{Duration: d, Easing: e, tracks: make(map[string]*track)}
}

func (e *Engine) track(key string) *track {
	if e.tracks == nil {
		e.tracks = make(map[string]*track)
	}
	tr, ok := e.tracks[key]
	if !ok {
		tr = &track{}
		e.tracks[key] = tr
	}
	return tr
}

// Snap sets key to region immediately. Any transition in flight for key is
// cancelled and its listener is never called.
func (e *Engine) Snap(key string, region clip.Region) {
	e.seq++
	tr := e.track(key)
	tr.seq = e.seq
	tr.value = region
	tr.to = region
	tr.running = false
	tr.onDone = nil
}

// Start animates key from "from" to "to" beginning at now. It supersedes any
// transition already running for key. onDone may be nil.
func (e *Engine) Start(key string, from, to clip.Region, now time.Time, onDone func()) {
	e.seq++
	tr := e.track(key)
	tr.value = from
	tr.to = to
	tr.start = now
	tr.end = now.Add(e.Duration)
	tr.seq = e.seq
	tr.onDone = onDone
	tr.running = true
}

// Retarget animates key from wherever it currently is to "to".
func (e *Engine) Retarget(key string, to clip.Region, now time.Time, onDone func()) {
	from, _ := e.Value(key, now)
	e.Start(key, from, to, now, onDone)
}

type due struct {
	tr     *track
	seq    uint64
	onDone func()
}

// Advance settles every transition whose deadline is at or before now and
// calls their listeners in the order the transitions were started. Listeners
// may start new transitions; those are not completed by this call. A listener
// whose key was restarted or snapped by an earlier listener in the same call
// is dropped. It returns the number of transitions completed.
func (e *Engine) Advance(now time.Time) int {
	var done []due
	for _, tr := range e.tracks {
		if !tr.running || now.Before(tr.end) {
			continue
		}
		tr.running = false
		tr.value = tr.to
		done = append(done, due{tr: tr, seq: tr.seq, onDone: tr.onDone})
		tr.onDone = nil
	}
	sort.Slice(done, func(i, j int) bool { return done[i].seq < done[j].seq })
	for _, d := range done {
		if d.onDone != nil && d.tr.seq == d.seq {
			d.onDone()
		}
	}
	return len(done)
}

// Value returns the region for key as of now, interpolated while a
// transition runs.
func (e *Engine) Value(key string, now time.Time) (clip.Region, bool) {
	tr, ok := e.tracks[key]
	if !ok {
		return clip.Region{}, false
	}
	if !tr.running {
		return tr.value, true
	}
	span := tr.end.Sub(tr.start)
	if span <= 0 || !now.Before(tr.end) {
		return tr.to, true
	}
	p := float64(now.Sub(tr.start)) / float64(span)
	return clip.Lerp(tr.value, tr.to, e.Easing.At(p)), true
}

// Target returns the region key is settling towards.
func (e *Engine) Target(key string) (clip.Region, bool) {
	tr, ok := e.tracks[key]
	if !ok {
		return clip.Region{}, false
	}
	return tr.to, true
}

// InFlight reports whether key is mid-transition.
func (e *Engine) InFlight(key string) bool {
	tr, ok := e.tracks[key]
	return ok && tr.running
}

// Active reports whether any transition is running.
func (e *Engine) Active() bool {
	for _, tr := range e.tracks {
		if tr.running {
			return true
		}
	}
	return false
}
