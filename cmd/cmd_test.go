package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

func writeInput(t *testing.T, text string) (fileName string) {
	fileName = filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0644))
	return
}

func TestConvertAndInspect(t *testing.T) {
	var (
		dumpFile = filepath.Join(t.TempDir(), "cons.bin")
		icFile   = writeInput(t, `
Title: Sod
Gamma: 1.4
NX1: 32
NX2: 8
NGhost: 2
Threads: 3
InitType: sod
`)
	)
	ip, err := processInput(icFile)
	require.NoError(t, err)
	ip.DumpFile = dumpFile
	var out bytes.Buffer
	mb, err := RunConvert(ip, zap.NewNop(), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "3 threads, dynamic schedule")
	assert.Contains(t, out.String(), "= Energy")
	totals := mb.Totals()
	assert.InDelta(t, 128*1.+128*0.125, totals.Mass, 1.e-12)

	A, hdr, err := utils.ReadArray4DFile(dumpFile)
	require.NoError(t, err)
	assert.Equal(t, mb.Cons.DataP, A.DataP)
	assert.Equal(t, mb.RunID, hdr.RunUUID())
	assert.Equal(t, mb.Active, ActiveBox(A, 2))

	out.Reset()
	require.NoError(t, RunInspect(dumpFile, 2, "Density", zap.NewNop(), &out))
	assert.Contains(t, out.String(), "1.4")
	assert.Contains(t, out.String(), "Density range")
	assert.Contains(t, out.String(), mb.RunID.String())

	assert.Error(t, RunInspect(dumpFile, 2, "vorticity", zap.NewNop(), &out))
	assert.Error(t, RunInspect(dumpFile, 20, "mach", zap.NewNop(), &out))
	assert.Error(t, RunInspect(filepath.Join(t.TempDir(), "nope.bin"), 2, "mach", zap.NewNop(), &out))

	// A dump with an unusable adiabatic index is an error, not a panic
	badGamma := filepath.Join(t.TempDir(), "gamma1.bin")
	require.NoError(t, utils.WriteArray4DFile(badGamma, mb.Cons, 1., mb.RunID))
	assert.NotPanics(t, func() {
		assert.ErrorContains(t, RunInspect(badGamma, 2, "mach", zap.NewNop(), &out), "adiabatic index")
	})
}

func TestBench(t *testing.T) {
	ip := InputParameters.NewInputParameters3D()
	ip.NX1, ip.NX2, ip.NX3 = 16, 16, 4
	ip.InitType = "blast"
	ip.Iterations = 2
	for _, sched := range []string{"dynamic", "static"} {
		ip.Schedule = sched
		results, err := RunBench(ip, []int{1, 2, 4, 8}, false, zap.NewNop())
		require.NoError(t, err)
		require.Len(t, results, 4)
		for i, r := range results {
			assert.True(t, r.Identical)
			assert.Equal(t, []int{1, 2, 4, 8}[i], r.Threads)
		}
		var out bytes.Buffer
		PrintBenchResults(&out, ip, results)
		assert.Contains(t, out.String(), "SUCCESSFUL")
		assert.NotContains(t, out.String(), "UNSUCCESSFUL")
	}
}

func TestOverrides(t *testing.T) {
	defer viper.Reset()
	icFile := writeInput(t, "Threads: 2\nSchedule: static\n")
	ip, err := processInput(icFile)
	require.NoError(t, err)
	assert.Equal(t, 2, ip.Threads)
	assert.Equal(t, types.ScheduleStatic, ip.GetSchedule())

	viper.Set("threads", 6)
	viper.Set("schedule", "dynamic")
	ip, err = processInput(icFile)
	require.NoError(t, err)
	assert.Equal(t, 6, ip.Threads)
	assert.Equal(t, types.ScheduleDynamic, ip.GetSchedule())

	viper.Set("schedule", "guided")
	_, err = processInput(icFile)
	assert.Error(t, err)

	_, err = processInput(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = processInput(writeInput(t, "Gamma: 1"))
	assert.Error(t, err)
}

func TestConvertWithoutGhostZones(t *testing.T) {
	ip, err := processInput(writeInput(t, `
NX1: 12
NX2: 4
NGhost: 0
InitType: uniform
`))
	require.NoError(t, err)
	assert.Equal(t, 0, ip.NGhost)
	var out bytes.Buffer
	mb, err := RunConvert(ip, zap.NewNop(), &out)
	require.NoError(t, err)
	assert.Equal(t, types.NewIndexBox(0, 11, 0, 3, 0, 0), mb.Active)
	assert.Equal(t, 5*12*4, len(mb.Cons.DataP))
	assert.InDelta(t, 48., mb.Totals().Mass, 1.e-12)
}
