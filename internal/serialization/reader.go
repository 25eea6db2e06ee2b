package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Read decodes a model from r. It returns the stored topology and the
// weight and bias parameters reshaped from it. Nothing is returned on
// failure: a short or malformed stream yields an error wrapping one of
// the package sentinels, never a partially filled model.
func Read(r io.Reader) (sizes []int, weights [][][]float64, biases [][]float64, err error) {
	br := bufio.NewReader(r)

	var magic [len(MagicBytes)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, nil, nil, fmt.Errorf("read magic: %w", wrapEOF(err))
	}
	if string(magic[:]) != MagicBytes {
		return nil, nil, nil, fmt.Errorf("got %q: %w", magic[:], ErrInvalidMagic)
	}

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, nil, nil, fmt.Errorf("read layer count: %w", wrapEOF(err))
	}
	if count < 2 || count > MaxLayers {
		return nil, nil, nil, fmt.Errorf("layer count %d: %w", count, ErrBadTopology)
	}

	sizes = make([]int, count)
	for i := range sizes {
		var size uint64
		if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
			return nil, nil, nil, fmt.Errorf("read layer size: %w", wrapEOF(err))
		}
		if size == 0 || size > MaxLayerSize {
			return nil, nil, nil, fmt.Errorf("layer %d size %d: %w", i, size, ErrBadTopology)
		}
		sizes[i] = int(size)
	}

	// Shapes are re-derived from the topology; exactly the declared
	// number of doubles is read into each.
	weights = make([][][]float64, count-1)
	for layer := range weights {
		weights[layer] = make([][]float64, sizes[layer])
		for i := range weights[layer] {
			row := make([]float64, sizes[layer+1])
			if err := binary.Read(br, binary.LittleEndian, row); err != nil {
				return nil, nil, nil, fmt.Errorf("read weights[%d][%d]: %w", layer, i, wrapEOF(err))
			}
			weights[layer][i] = row
		}
	}

	biases = make([][]float64, count-1)
	for layer := range biases {
		bias := make([]float64, sizes[layer+1])
		if err := binary.Read(br, binary.LittleEndian, bias); err != nil {
			return nil, nil, nil, fmt.Errorf("read biases[%d]: %w", layer, wrapEOF(err))
		}
		biases[layer] = bias
	}

	return sizes, weights, biases, nil
}

// ReadFile reads a model from the file at path.
func ReadFile(path string) (sizes []int, weights [][][]float64, biases [][]float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open model file for reading: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// wrapEOF converts short reads into ErrTruncated so callers can match a
// single sentinel for any truncation point.
func wrapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}
