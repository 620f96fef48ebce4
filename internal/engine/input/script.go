package input

// Segment holds the axes for a span of simulated time.
type Segment struct {
	Duration   float32 `yaml:"duration"`
	Horizontal float32 `yaml:"horizontal"`
	Vertical   float32 `yaml:"vertical"`
	CameraYaw  float32 `yaml:"camera_yaw"`
}

// Script replays a fixed list of segments; after the last one it reports
// zero input.
type Script struct {
	segments []Segment
	index    int
	elapsed  float32
}

// NewScript creates a script source.
func NewScript(segments []Segment) *Script {
	return &Script{segments: segments}
}

// Done reports whether every segment has elapsed.
func (s *Script) Done() bool {
	return s.index >= len(s.segments)
}

// Next implements Source.
func (s *Script) Next(dt float32) Frame {
	for !s.Done() && s.elapsed >= s.segments[s.index].Duration {
		s.elapsed -= s.segments[s.index].Duration
		s.index++
	}
	if s.Done() {
		fwd, right := Camera{}.Basis()
		return Frame{CameraForward: fwd, CameraRight: right}
	}

	seg := s.segments[s.index]
	s.elapsed += dt
	fwd, right := Camera{Yaw: seg.CameraYaw}.Basis()
	return Frame{
		Horizontal:    seg.Horizontal,
		Vertical:      seg.Vertical,
		CameraForward: fwd,
		CameraRight:   right,
	}
}

// TotalDuration returns the summed segment length.
func (s *Script) TotalDuration() float32 {
	var total float32
	for _, seg := range s.segments {
		total += seg.Duration
	}
	return total
}
