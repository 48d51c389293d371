package port

import "sync"

// SimGroup is the register state of one simulated group.
type SimGroup struct {
	DIR    uint32
	OUT    uint32
	PINCFG [PadsPerGroup]uint8
}

// Sim is a simulated PORT peripheral. The zero value is ready to use and
// matches the reset state (all inputs, all low, no pulls).
type Sim struct {
	mu     sync.Mutex
	groups [Groups]SimGroup
	writes int
}

func NewSim() *Sim { return &Sim{} }

var _ Port = (*Sim)(nil)

func (s *Sim) DirSet(group int, mask uint32) {
	s.mu.Lock()
	s.groups[group].DIR |= mask
	s.writes++
	s.mu.Unlock()
}

func (s *Sim) DirClr(group int, mask uint32) {
	s.mu.Lock()
	s.groups[group].DIR &^= mask
	s.writes++
	s.mu.Unlock()
}

func (s *Sim) OutSet(group int, mask uint32) {
	s.mu.Lock()
	s.groups[group].OUT |= mask
	s.writes++
	s.mu.Unlock()
}

func (s *Sim) OutClr(group int, mask uint32) {
	s.mu.Lock()
	s.groups[group].OUT &^= mask
	s.writes++
	s.mu.Unlock()
}

func (s *Sim) OutTgl(group int, mask uint32) {
	s.mu.Lock()
	s.groups[group].OUT ^= mask
	s.writes++
	s.mu.Unlock()
}

func (s *Sim) PinCfgSet(group int, pad uint8, bits uint8) {
	s.mu.Lock()
	s.groups[group].PINCFG[pad] |= bits
	s.writes++
	s.mu.Unlock()
}

// Snapshot returns a copy of all group registers.
func (s *Sim) Snapshot() [Groups]SimGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups
}

// Group returns a copy of one group's registers.
func (s *Sim) Group(group int) SimGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups[group]
}

// Writes counts register writes since creation or the last Reset.
func (s *Sim) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Reset returns every register to its reset value.
func (s *Sim) Reset() {
	s.mu.Lock()
	s.groups = [Groups]SimGroup{}
	s.writes = 0
	s.mu.Unlock()
}

func (s *Sim) IsOutput(r Ref) bool { return s.Group(r.Group).DIR&r.Mask != 0 }
func (s *Sim) Level(r Ref) bool    { return s.Group(r.Group).OUT&r.Mask != 0 }
func (s *Sim) PullEnabled(r Ref) bool {
	return s.Group(r.Group).PINCFG[r.Pad]&PinCfgPULLEN != 0
}
