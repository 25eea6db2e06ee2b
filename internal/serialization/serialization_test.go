package serialization

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() (sizes []int, weights [][][]float64, biases [][]float64) {
	sizes = []int{3, 2}
	weights = [][][]float64{{
		{0.1, 0.2},
		{0.3, 0.4},
		{0.5, 0.6},
	}}
	biases = [][]float64{{-0.1, -0.2}}
	return sizes, weights, biases
}

// A {3,2} model must encode to exactly 90 bytes:
// 2 (magic) + 8 (count) + 16 (sizes) + 48 (weights) + 16 (biases).
func TestWriteByteLayout(t *testing.T) {
	sizes, weights, biases := sampleModel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sizes, weights, biases))

	raw := buf.Bytes()
	require.Len(t, raw, 90)

	assert.Equal(t, []byte("CS"), raw[:2])
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(raw[2:10]))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(raw[10:18]))
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(raw[18:26]))

	// Weights follow row-major per source neuron.
	first := math.Float64frombits(binary.LittleEndian.Uint64(raw[26:34]))
	assert.Equal(t, 0.1, first)
	last := math.Float64frombits(binary.LittleEndian.Uint64(raw[66:74]))
	assert.Equal(t, 0.6, last)

	// Biases are the trailing 16 bytes.
	bias0 := math.Float64frombits(binary.LittleEndian.Uint64(raw[74:82]))
	assert.Equal(t, -0.1, bias0)
}

func TestRoundTrip(t *testing.T) {
	sizes, weights, biases := sampleModel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sizes, weights, biases))

	gotSizes, gotWeights, gotBiases, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, sizes, gotSizes)
	assert.Equal(t, weights, gotWeights)
	assert.Equal(t, biases, gotBiases)
}

func TestReadRejectsCorruptedMagic(t *testing.T) {
	sizes, weights, biases := sampleModel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sizes, weights, biases))

	raw := buf.Bytes()
	raw[0] = 'X'

	_, _, _, err := Read(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadRejectsTruncation(t *testing.T) {
	sizes, weights, biases := sampleModel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sizes, weights, biases))
	raw := buf.Bytes()

	// Cut at several points: inside the header, the sizes, the weights
	// and the biases.
	for _, cut := range []int{1, 6, 20, 40, 80} {
		_, _, _, err := Read(bytes.NewReader(raw[:cut]))
		assert.ErrorIs(t, err, ErrTruncated, "cut at %d bytes", cut)
	}
}

func TestReadRejectsBadTopology(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(4)))

	_, _, _, err := Read(bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrBadTopology)
}

func TestReadRejectsZeroLayerSize(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(3)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(0)))

	_, _, _, err := Read(bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, ErrBadTopology)
}

func TestWriteFileAppendsExtension(t *testing.T) {
	sizes, weights, biases := sampleModel()
	dir := t.TempDir()

	path := filepath.Join(dir, "model")
	require.NoError(t, WriteFile(path, sizes, weights, biases))

	_, err := os.Stat(path + Ext)
	require.NoError(t, err, "extension must be appended when absent")

	explicit := filepath.Join(dir, "explicit"+Ext)
	require.NoError(t, WriteFile(explicit, sizes, weights, biases))
	_, err = os.Stat(explicit)
	require.NoError(t, err, "extension must not be doubled")
}

func TestReadFileMissing(t *testing.T) {
	_, _, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.chisei"))
	require.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	sizes, weights, biases := sampleModel()
	path := filepath.Join(t.TempDir(), "model.chisei")

	require.NoError(t, WriteFile(path, sizes, weights, biases))

	gotSizes, gotWeights, gotBiases, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sizes, gotSizes)
	assert.Equal(t, weights, gotWeights)
	assert.Equal(t, biases, gotBiases)
}
