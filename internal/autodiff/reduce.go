package autodiff

// Sum folds the values left to right with Add.
//
// An empty sum is Const(0); a single value is returned as is.
func (t *Tape) Sum(vs ...Value) Value {
	if len(vs) == 0 {
		return t.Const(0)
	}
	acc := vs[0]
	t.own(acc)
	for _, v := range vs[1:] {
		acc = t.Add(acc, v)
	}
	return acc
}

// Product folds the values left to right with Mul.
//
// An empty product is Const(1); a single value is returned as is.
func (t *Tape) Product(vs ...Value) Value {
	if len(vs) == 0 {
		return t.Const(1)
	}
	acc := vs[0]
	t.own(acc)
	for _, v := range vs[1:] {
		acc = t.Mul(acc, v)
	}
	return acc
}

// Mean returns Sum(vs) * (1/len(vs)). An empty mean is Const(0).
func (t *Tape) Mean(vs ...Value) Value {
	if len(vs) == 0 {
		return t.Const(0)
	}
	return t.DivScalar(t.Sum(vs...), float64(len(vs)))
}
