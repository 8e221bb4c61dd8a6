package srp

// interpolatePosition computes a fragment's interpolated position from n
// vertices' screen-space positions (x, y in pixels, z in NDC) and
// interpolation weights. z and xy are always the
// affine (screen-space-linear) sum; w is 1/Σ(invW·weight) under perspective
// interpolation, or 1 under affine.
func interpolatePosition(positions [][4]float64, weights, invW []float64, perspective bool) [4]float64 {
	var out [4]float64
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := range positions {
			sum += positions[j][i] * weights[j]
		}
		out[i] = sum
	}
	if perspective {
		sum := 0.0
		for j := range invW {
			sum += invW[j] * weights[j]
		}
		out[3] = 1 / sum
	} else {
		out[3] = 1.0
	}
	return out
}

// interpolateAttributes writes the interpolated varying vector into dst.
// Under perspective interpolation each element is
// wInterp · Σ(varying[j][k]·invW[j]·weight[j]); under affine it is the
// plain weighted sum.
func interpolateAttributes(varyings [][]float64, weights, invW []float64, wInterp float64, perspective bool, dst []float64) {
	for k := range dst {
		sum := 0.0
		if perspective {
			for j := range varyings {
				sum += varyings[j][k] * invW[j] * weights[j]
			}
			sum *= wInterp
		} else {
			for j := range varyings {
				sum += varyings[j][k] * weights[j]
			}
		}
		dst[k] = sum
	}
}
