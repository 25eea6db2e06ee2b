// Copyright 2026 Chisei Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads IDX image/label files into normalized sample
// vectors for training and evaluation.
package dataset

import "github.com/nthnn/chisei/internal/idx"

// Dataset is a paired, normalized sample collection.
type Dataset = idx.Dataset

// ErrFormat is wrapped by every IDX decoding failure that is not a
// plain I/O error.
var ErrFormat = idx.ErrFormat

// Load reads paired IDX image and label files, normalizing pixels to
// [0, 1] and one-hot encoding labels over classes entries. limit caps
// the sample count; limit <= 0 loads everything.
func Load(imagesPath, labelsPath string, classes, limit int) (*Dataset, error) {
	return idx.Load(imagesPath, labelsPath, classes, limit)
}
