package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write encodes the topology and parameters to w in the .chisei layout.
// The caller guarantees that weights and biases are shaped by sizes;
// the writer emits exactly the declared number of values.
func Write(w io.Writer, sizes []int, weights [][][]float64, biases [][]float64) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(MagicBytes); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(sizes))); err != nil {
		return fmt.Errorf("write layer count: %w", err)
	}
	for _, size := range sizes {
		if err := binary.Write(bw, binary.LittleEndian, uint64(size)); err != nil {
			return fmt.Errorf("write layer size: %w", err)
		}
	}

	// Weight matrices, row-major per source neuron.
	for layer, matrix := range weights {
		for i, row := range matrix {
			if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
				return fmt.Errorf("write weights[%d][%d]: %w", layer, i, err)
			}
		}
	}

	for layer, bias := range biases {
		if err := binary.Write(bw, binary.LittleEndian, bias); err != nil {
			return fmt.Errorf("write biases[%d]: %w", layer, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the model to path, appending the .chisei extension
// when it is missing. The file is written exactly once, in full.
func WriteFile(path string, sizes []int, weights [][][]float64, biases [][]float64) error {
	if !strings.HasSuffix(path, Ext) {
		path += Ext
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open model file for writing: %w", err)
	}

	if err := Write(f, sizes, weights, biases); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
