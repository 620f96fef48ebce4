package spatial

import (
	gomath "math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Heightfield is a regular grid of terrain heights on the XZ plane.
type Heightfield struct {
	OriginX, OriginZ float32 // world position of sample (0, 0)
	CellSize         float32
	Width, Depth     int // sample counts
	Heights          []float32
}

// NewFlatHeightfield creates a heightfield with every sample at height.
func NewFlatHeightfield(originX, originZ, cellSize float32, width, depth int, height float32) *Heightfield {
	hf := &Heightfield{
		OriginX:  originX,
		OriginZ:  originZ,
		CellSize: cellSize,
		Width:    width,
		Depth:    depth,
		Heights:  make([]float32, width*depth),
	}
	for i := range hf.Heights {
		hf.Heights[i] = height
	}
	return hf
}

// NoiseConfig drives procedural terrain generation.
type NoiseConfig struct {
	Seed        int64   `yaml:"seed"`
	Amplitude   float32 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
}

// NewNoiseHeightfield fills a heightfield with layered simplex noise centred
// on baseHeight.
func NewNoiseHeightfield(originX, originZ, cellSize float32, width, depth int, baseHeight float32, cfg NoiseConfig) *Heightfield {
	hf := NewFlatHeightfield(originX, originZ, cellSize, width, depth, baseHeight)
	if cfg.Amplitude == 0 {
		return hf
	}
	octaves := cfg.Octaves
	if octaves < 1 {
		octaves = 1
	}
	noise := opensimplex.New(cfg.Seed)

	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			wx := float64(originX + float32(x)*cellSize)
			wz := float64(originZ + float32(z)*cellSize)

			total, amp, maxVal, freq := 0.0, 1.0, 0.0, cfg.Frequency
			for o := 0; o < octaves; o++ {
				total += noise.Eval2(wx*freq, wz*freq) * amp
				maxVal += amp
				amp *= cfg.Persistence
				freq *= 2
			}
			hf.Heights[z*width+x] = baseHeight + float32(total/maxVal)*cfg.Amplitude
		}
	}
	return hf
}

// sample returns the height at integer grid coordinates, clamped to the grid.
func (hf *Heightfield) sample(x, z int) float32 {
	if x < 0 {
		x = 0
	}
	if x >= hf.Width {
		x = hf.Width - 1
	}
	if z < 0 {
		z = 0
	}
	if z >= hf.Depth {
		z = hf.Depth - 1
	}
	return hf.Heights[z*hf.Width+x]
}

// Contains reports whether the XZ position is over the grid.
func (hf *Heightfield) Contains(x, z float32) bool {
	gx := (x - hf.OriginX) / hf.CellSize
	gz := (z - hf.OriginZ) / hf.CellSize
	return gx >= 0 && gz >= 0 && gx <= float32(hf.Width-1) && gz <= float32(hf.Depth-1)
}

// HeightAt returns the bilinearly interpolated height at a world XZ position.
func (hf *Heightfield) HeightAt(x, z float32) float32 {
	gx := (x - hf.OriginX) / hf.CellSize
	gz := (z - hf.OriginZ) / hf.CellSize
	ix := int(gx)
	iz := int(gz)
	if gx < 0 {
		ix--
	}
	if gz < 0 {
		iz--
	}
	fx := gx - float32(ix)
	fz := gz - float32(iz)

	h00 := hf.sample(ix, iz)
	h10 := hf.sample(ix+1, iz)
	h01 := hf.sample(ix, iz+1)
	h11 := hf.sample(ix+1, iz+1)

	h0 := h00 + (h10-h00)*fx
	h1 := h01 + (h11-h01)*fx
	return h0 + (h1-h0)*fz
}

// NormalAt returns the surface normal from central differences.
func (hf *Heightfield) NormalAt(x, z float32) math.Vec3 {
	e := hf.CellSize * 0.5
	dx := hf.HeightAt(x+e, z) - hf.HeightAt(x-e, z)
	dz := hf.HeightAt(x, z+e) - hf.HeightAt(x, z-e)
	return math.Vec3{X: -dx, Y: 2 * e, Z: -dz}.Normalize()
}

// Intersect marches the ray over the grid and refines the first downward
// crossing of the surface by bisection. Rays starting below the surface
// do not hit it.
func (hf *Heightfield) Intersect(r Ray, maxDistance float32) (t float32, normal math.Vec3, hit bool) {
	if r.Direction.X == 0 && r.Direction.Z == 0 {
		if r.Direction.Y >= 0 {
			return 0, math.Vec3{}, false
		}
		// Straight down: read the height directly.
		if !hf.Contains(r.Origin.X, r.Origin.Z) {
			return 0, math.Vec3{}, false
		}
		h := hf.HeightAt(r.Origin.X, r.Origin.Z)
		if r.Origin.Y < h {
			return 0, math.Vec3{}, false
		}
		t = (r.Origin.Y - h) / -r.Direction.Y
		if t > maxDistance {
			return 0, math.Vec3{}, false
		}
		return t, hf.NormalAt(r.Origin.X, r.Origin.Z), true
	}

	tEnter, tExit, ok := hf.clip(r)
	if !ok {
		return 0, math.Vec3{}, false
	}
	if tExit > maxDistance {
		tExit = maxDistance
	}
	if tEnter > tExit {
		return 0, math.Vec3{}, false
	}

	step := hf.CellSize * 0.25
	prevT := tEnter
	prevAbove := hf.above(r.At(tEnter))
	for cur := tEnter + step; ; cur += step {
		if cur > tExit {
			cur = tExit
		}
		nowAbove := hf.above(r.At(cur))
		if prevAbove && !nowAbove {
			lo, hi := prevT, cur
			for i := 0; i < 20; i++ {
				mid := (lo + hi) * 0.5
				if hf.above(r.At(mid)) {
					lo = mid
				} else {
					hi = mid
				}
			}
			hp := r.At(hi)
			return hi, hf.NormalAt(hp.X, hp.Z), true
		}
		if cur >= tExit {
			return 0, math.Vec3{}, false
		}
		prevT, prevAbove = cur, nowAbove
	}
}

// clip returns the parameter range over which the ray is above the grid's
// XZ footprint.
func (hf *Heightfield) clip(r Ray) (tEnter, tExit float32, ok bool) {
	tEnter, tExit = 0, float32(gomath.MaxFloat32)
	lo := [2]float32{hf.OriginX, hf.OriginZ}
	hi := [2]float32{
		hf.OriginX + float32(hf.Width-1)*hf.CellSize,
		hf.OriginZ + float32(hf.Depth-1)*hf.CellSize,
	}
	o := [2]float32{r.Origin.X, r.Origin.Z}
	d := [2]float32{r.Direction.X, r.Direction.Z}

	for axis := 0; axis < 2; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tEnter {
			tEnter = t1
		}
		if t2 < tExit {
			tExit = t2
		}
	}
	return tEnter, tExit, tEnter <= tExit
}

func (hf *Heightfield) above(p math.Vec3) bool {
	if !hf.Contains(p.X, p.Z) {
		return true
	}
	return p.Y > hf.HeightAt(p.X, p.Z)
}
