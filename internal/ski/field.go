package ski

import "math"

// Field owns the live slope objects.
//
// Objects are stored densely. Removal only marks a slot dead; Compact drops
// dead slots once per tick so iteration never observes a shifting slice.
type Field struct {
	objects []SlopeObject
	dead    []bool
	nextID  Handle

	rnd        Random
	spawnTimer float64
	rampTimer  float64
}

// NewField creates an empty field drawing from rnd.
func NewField(rnd Random) *Field {
	return &Field{
		objects: make([]SlopeObject, 0, 64),
		dead:    make([]bool, 0, 64),
		rnd:     rnd,
	}
}

// Reset removes every object and restarts both spawn timers.
func (f *Field) Reset() {
	f.objects = f.objects[:0]
	f.dead = f.dead[:0]
	f.spawnTimer = 0
	f.rampTimer = 0
}

// Len returns the number of live objects.
func (f *Field) Len() int {
	n := 0
	for _, d := range f.dead {
		if !d {
			n++
		}
	}
	return n
}

// Add inserts an object and returns its handle.
func (f *Field) Add(t ObjectType, x, y, w, h float64) Handle {
	f.nextID++
	f.objects = append(f.objects, SlopeObject{
		Handle: f.nextID,
		Type:   t,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	})
	f.dead = append(f.dead, false)
	return f.nextID
}

// Remove marks an object for removal at the next Compact.
func (f *Field) Remove(h Handle) {
	for i := range f.objects {
		if f.objects[i].Handle == h {
			f.dead[i] = true
			return
		}
	}
}

// Get returns a live object by handle.
func (f *Field) Get(h Handle) (SlopeObject, bool) {
	for i := range f.objects {
		if f.objects[i].Handle == h && !f.dead[i] {
			return f.objects[i], true
		}
	}
	return SlopeObject{}, false
}

// Each calls fn with a pointer to every live object until fn returns false.
// fn may Remove objects, including the current one.
func (f *Field) Each(fn func(o *SlopeObject) bool) {
	for i := range f.objects {
		if f.dead[i] {
			continue
		}
		if !fn(&f.objects[i]) {
			return
		}
	}
}

// Objects returns a copy of the live objects.
func (f *Field) Objects() []SlopeObject {
	out := make([]SlopeObject, 0, len(f.objects))
	f.Each(func(o *SlopeObject) bool {
		out = append(out, *o)
		return true
	})
	return out
}

// Compact drops every slot marked for removal.
func (f *Field) Compact() {
	n := 0
	for i := range f.objects {
		if f.dead[i] {
			continue
		}
		f.objects[n] = f.objects[i]
		f.dead[n] = false
		n++
	}
	f.objects = f.objects[:n]
	f.dead = f.dead[:n]
}

// Update spawns, scrolls, and culls objects for one tick.
// Culled objects are marked dead immediately and compacted before returning.
func (f *Field) Update(dt, speed, distance float64) {
	tier := Difficulty(distance)

	f.spawnTimer -= dt
	if f.spawnTimer <= 0 {
		f.spawnObstacle(tier)
		interval := SpawnInterval(tier)
		f.spawnTimer = interval + f.rnd.Float64()*interval
	}

	f.rampTimer -= dt
	if f.rampTimer <= 0 {
		f.spawnRamp()
		interval := RampInterval(tier)
		f.rampTimer = interval + f.rnd.Float64()*interval
	}

	dy := speed * dt
	for i := range f.objects {
		if f.dead[i] {
			continue
		}
		f.objects[i].Y -= dy
		if f.objects[i].Y < CullLine {
			f.dead[i] = true
		}
	}
	f.Compact()
}

// isClear reports whether (x, y) is at least minDist from every live object.
func (f *Field) isClear(x, y, minDist float64) bool {
	clear := true
	f.Each(func(o *SlopeObject) bool {
		dx := o.X - x
		dy := o.Y - y
		if dx*dx+dy*dy < minDist*minDist {
			clear = false
			return false
		}
		return true
	})
	return clear
}

// pickX chooses a spawn column in [margin, ViewWidth-margin], retrying a few
// times to keep clear of existing objects. The last candidate wins if none is clear.
func (f *Field) pickX(y, margin float64) float64 {
	x := between(f.rnd, margin, ViewWidth-margin)
	for attempt := 0; attempt < SpawnAttempts && !f.isClear(x, y, SpawnMinDistance); attempt++ {
		x = between(f.rnd, margin, ViewWidth-margin)
	}
	return x
}

func (f *Field) spawnObstacle(tier Tier) {
	y := ViewHeight + SpawnAhead
	x := f.pickX(y, SpawnMargin)

	kind := PickObstacleType(tier, f.rnd)
	if kind == Fish && f.rnd.Float64() < FishClusterOdds {
		f.spawnFishCluster(x, y)
		return
	}

	w, h := extentFor(kind, f.rnd)
	f.Add(kind, x, y, w, h)
}

func (f *Field) spawnFishCluster(x, y float64) {
	count := intBetween(f.rnd, 3, 5)
	startX := x - float64(count-1)*FishClusterGapX/2
	w, h := extentFor(Fish, f.rnd)
	for i := 0; i < count; i++ {
		fx := math.Max(SlopeMargin, math.Min(ViewWidth-SlopeMargin, startX+float64(i)*FishClusterGapX))
		f.Add(Fish, fx, y+float64(i)*FishClusterGapY, w, h)
	}
}

func (f *Field) spawnRamp() {
	y := ViewHeight + RampSpawnAhead
	x := f.pickX(y, RampSpawnMargin)
	w, h := extentFor(Ramp, f.rnd)
	f.Add(Ramp, x, y, w, h)
}
