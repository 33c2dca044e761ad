// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package complexity

import (
	"math"
	"strings"
)

// Model represents a theoretical complexity class as a function of the
// problem size.
type Model struct {
	Name string
	F    func(n float64) float64
}

// Predefined models, Logarithmic uses log2.
var (
	Constant     = Model{Name: "O(1)", F: func(float64) float64 { return 1 }}
	Logarithmic  = Model{Name: "O(log n)", F: math.Log2}
	Linear       = Model{Name: "O(n)", F: func(n float64) float64 { return n }}
	Linearithmic = Model{Name: "O(n log n)", F: func(n float64) float64 { return n * math.Log2(n) }}
	Quadratic    = Model{Name: "O(n^2)", F: func(n float64) float64 { return n * n }}
)

// Models returns all of the predefined models in increasing order of growth.
func Models() []Model {
	return []Model{Constant, Logarithmic, Linear, Linearithmic, Quadratic}
}

var modelAliases = map[string]Model{
	"constant":     Constant,
	"logarithmic":  Logarithmic,
	"log":          Logarithmic,
	"linear":       Linear,
	"linearithmic": Linearithmic,
	"nlogn":        Linearithmic,
	"quadratic":    Quadratic,
}

// ModelByName returns the predefined model with the given name, which may
// be either its big-O name, eg. O(n), or one of constant, logarithmic (log),
// linear, linearithmic (nlogn) or quadratic.
func ModelByName(name string) (Model, bool) {
	if m, ok := modelAliases[strings.ToLower(name)]; ok {
		return m, true
	}
	for _, m := range Models() {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}
