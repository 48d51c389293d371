package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefOf(t *testing.T) {
	r := RefOf(GroupA, 27)
	assert.Equal(t, GroupA, r.Group)
	assert.Equal(t, uint8(27), r.Pad)
	assert.Equal(t, uint32(1)<<27, r.Mask)

	assert.Equal(t, uint32(1), RefOf(GroupB, 0).Mask)
	assert.Equal(t, uint32(0x80000000), RefOf(GroupB, 31).Mask)
}

func TestSim_StrobesTouchOnlyTheirBits(t *testing.T) {
	s := NewSim()
	s.DirSet(GroupA, 1<<3|1<<5)
	s.OutSet(GroupA, 1<<3|1<<5)
	s.OutClr(GroupA, 1<<5)
	s.DirClr(GroupA, 1<<3)

	a := s.Group(GroupA)
	assert.Equal(t, uint32(1<<5), a.DIR)
	assert.Equal(t, uint32(1<<3), a.OUT)
	assert.Equal(t, SimGroup{}, s.Group(GroupB), "group B must be untouched")

	s.OutTgl(GroupA, 1<<3|1<<4)
	assert.Equal(t, uint32(1<<4), s.Group(GroupA).OUT)
}

func TestSim_PinCfgSetIsOR(t *testing.T) {
	s := NewSim()
	s.PinCfgSet(GroupB, 9, PinCfgINEN)
	s.PinCfgSet(GroupB, 9, PinCfgPULLEN)

	r := RefOf(GroupB, 9)
	require.True(t, s.PullEnabled(r))
	assert.Equal(t, PinCfgINEN|PinCfgPULLEN, s.Group(GroupB).PINCFG[9])
	assert.False(t, s.PullEnabled(RefOf(GroupA, 9)))
}

func TestSim_ResetAndWrites(t *testing.T) {
	s := NewSim()
	s.DirSet(GroupA, 1)
	s.OutSet(GroupA, 1)
	require.Equal(t, 2, s.Writes())
	require.True(t, s.IsOutput(RefOf(GroupA, 0)))
	require.True(t, s.Level(RefOf(GroupA, 0)))

	s.Reset()
	assert.Equal(t, 0, s.Writes())
	assert.Equal(t, [Groups]SimGroup{}, s.Snapshot())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
