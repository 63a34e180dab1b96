package label

// Sampler polls every button once per tick. The tick period is the
// debounce: levels are taken as-is and edges are found by comparing with
// the previous tick.
type Sampler struct {
	inputs []Input
	prev   []bool
	cur    []bool
}

func NewSampler(inputs []Input) *Sampler {
	return &Sampler{
		inputs: inputs,
		prev:   make([]bool, len(inputs)),
		cur:    make([]bool, len(inputs)),
	}
}

// Sample reads all inputs. The returned slice is owned by the Sampler and
// is overwritten on the next call.
func (s *Sampler) Sample() []bool {
	copy(s.prev, s.cur)
	for i, in := range s.inputs {
		s.cur[i] = in.Pressed()
	}
	return s.cur
}

// Resync makes the current line levels the baseline so a button still
// held from before (the one that woke the device) produces no edge.
func (s *Sampler) Resync() {
	for i, in := range s.inputs {
		s.cur[i] = in.Pressed()
	}
	copy(s.prev, s.cur)
}

func (s *Sampler) Len() int         { return len(s.inputs) }
func (s *Sampler) Level(i int) bool { return s.cur[i] }
func (s *Sampler) Prev(i int) bool  { return s.prev[i] }
func (s *Sampler) Rose(i int) bool  { return s.cur[i] && !s.prev[i] }
func (s *Sampler) Fell(i int) bool  { return !s.cur[i] && s.prev[i] }
