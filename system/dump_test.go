package system_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/system"
)

func TestSystem_DumpSingleBDD(t *testing.T) {
	s := system.New(1)
	require.NoError(t, s.PushBDD(buildSingleBDD(t, 0, 0, 1)))

	var buf strings.Builder
	require.NoError(t, s.Dump(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "1 1", lines[0])
	assert.Equal(t, "0 2", lines[1])
	assert.Equal(t, "0:(1;0,2)|", lines[2])
	assert.Equal(t, ":(2;0,0)|", lines[3])
	assert.Equal(t, "---", lines[4])
}

func TestSystem_DumpOrdersBDDsByID(t *testing.T) {
	s := system.New(1)
	require.NoError(t, s.PushBDD(buildSingleBDD(t, 5, 0, 1)))
	require.NoError(t, s.PushBDD(buildSingleBDD(t, 2, 0, 1)))

	var buf strings.Builder
	require.NoError(t, s.Dump(&buf))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "2 2", lines[1])
	assert.Equal(t, "5 2", lines[5])
}

func TestSystem_DumpMultiNodeLevel(t *testing.T) {
	s := system.New(2)
	require.NoError(t, s.PushBDD(buildXorBDD(t, 0)))

	var buf strings.Builder
	require.NoError(t, s.Dump(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Contains(t, lines, "1:(2;0,4)(3;4,0)|")
}
