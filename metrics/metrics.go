// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics scores model predictions.
package metrics

import "github.com/born-ml/scalargrad/internal/metrics"

// BinaryAccuracy is the fraction of elements on the same side of a threshold
// as their target.
type BinaryAccuracy = metrics.BinaryAccuracy

// DefaultThreshold is used when BinaryAccuracy.Threshold is zero.
const DefaultThreshold = metrics.DefaultThreshold
