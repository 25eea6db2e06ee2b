// Package idx reads the IDX image/label file format and emits normalized
// sample vectors for the network engine.
//
// IDX files open with a 4-byte big-endian magic number (0x00000803 for
// images, 0x00000801 for labels) followed by big-endian dimension fields
// and row-major unsigned byte data. Pixels are normalized to [0, 1] and
// labels are one-hot encoded; the engine itself never sees this format.
package idx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Magic numbers of the two IDX file kinds.
const (
	imageMagic = 0x00000803
	labelMagic = 0x00000801
)

// ErrFormat is wrapped by every decoding failure that is not a plain
// I/O error.
var ErrFormat = errors.New("idx: malformed file")

// Dataset is a paired, normalized sample collection ready for training.
type Dataset struct {
	// Inputs holds one normalized pixel vector per sample.
	Inputs [][]float64
	// Targets holds the one-hot encoded label per sample.
	Targets [][]float64
	// Rows and Cols are the source image dimensions.
	Rows, Cols int
}

// InputSize returns the length of each input vector.
func (d *Dataset) InputSize() int {
	return d.Rows * d.Cols
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// Load reads paired image and label files and returns at most limit
// samples (limit <= 0 loads everything). Labels are one-hot encoded
// over classes entries; pass 10 for the usual digit datasets.
func Load(imagesPath, labelsPath string, classes, limit int) (*Dataset, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("idx: class count %d must be positive", classes)
	}

	images, rows, cols, err := readImages(imagesPath)
	if err != nil {
		return nil, err
	}
	labels, err := readLabels(labelsPath)
	if err != nil {
		return nil, err
	}
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%w: %d images but %d labels", ErrFormat, len(images), len(labels))
	}

	count := len(images)
	if limit > 0 && count > limit {
		count = limit
	}

	ds := &Dataset{
		Inputs:  make([][]float64, count),
		Targets: make([][]float64, count),
		Rows:    rows,
		Cols:    cols,
	}
	for s := 0; s < count; s++ {
		input := make([]float64, len(images[s]))
		for i, pixel := range images[s] {
			input[i] = float64(pixel) / 255.0
		}
		ds.Inputs[s] = input

		label := int(labels[s])
		if label >= classes {
			return nil, fmt.Errorf("%w: label %d out of range for %d classes", ErrFormat, label, classes)
		}
		target := make([]float64, classes)
		target[label] = 1.0
		ds.Targets[s] = target
	}

	return ds, nil
}

// readImages parses an IDX image file into raw per-sample pixel rows.
func readImages(path string) (images [][]byte, rows, cols int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("idx: open images: %w", err)
	}
	defer f.Close()

	var magic uint32
	if err := binary.Read(f, binary.BigEndian, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: read image magic: %w", ErrFormat, err)
	}
	if magic != imageMagic {
		return nil, 0, 0, fmt.Errorf("%w: image magic 0x%08x, want 0x%08x", ErrFormat, magic, imageMagic)
	}

	var count, r, c uint32
	for _, field := range []*uint32{&count, &r, &c} {
		if err := binary.Read(f, binary.BigEndian, field); err != nil {
			return nil, 0, 0, fmt.Errorf("%w: read image dimensions: %w", ErrFormat, err)
		}
	}

	size := int(r) * int(c)
	images = make([][]byte, count)
	for i := range images {
		images[i] = make([]byte, size)
		if _, err := io.ReadFull(f, images[i]); err != nil {
			return nil, 0, 0, fmt.Errorf("%w: read image %d: %w", ErrFormat, i, err)
		}
	}

	return images, int(r), int(c), nil
}

// readLabels parses an IDX label file into raw label bytes.
func readLabels(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("idx: open labels: %w", err)
	}
	defer f.Close()

	var magic uint32
	if err := binary.Read(f, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("%w: read label magic: %w", ErrFormat, err)
	}
	if magic != labelMagic {
		return nil, fmt.Errorf("%w: label magic 0x%08x, want 0x%08x", ErrFormat, magic, labelMagic)
	}

	var count uint32
	if err := binary.Read(f, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: read label count: %w", ErrFormat, err)
	}

	labels := make([]byte, count)
	if _, err := io.ReadFull(f, labels); err != nil {
		return nil, fmt.Errorf("%w: read labels: %w", ErrFormat, err)
	}
	return labels, nil
}
