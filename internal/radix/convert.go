package radix

// Convert parses input as a numeral in fromBase and renders its value in
// toBase with at most precision fractional digits.
//
// A returned PrecisionExceededError is advisory: it accompanies a valid,
// truncated result string. Any other error means no result was produced.
func Convert(input string, fromBase, toBase, precision int) (string, error) {
	n, err := ParseNumeral(input, fromBase)
	if err != nil {
		return "", err
	}
	return ConvertNumeral(n, toBase, precision)
}

// ConvertNumeral renders an already-parsed numeral in toBase.
func ConvertNumeral(n Numeral, toBase, precision int) (string, error) {
	dec, err := ToDecimal(n, precision)
	if err != nil {
		return "", err
	}
	exp, err := FromDecimal(dec, toBase, precision)
	if err != nil && !IsPrecisionExceeded(err) {
		return "", err
	}
	return exp.String(), err
}

// SweepResult is one line of an all-bases sweep.
type SweepResult struct {
	Base   int
	Output string
	Exact  bool
}

// AllBases converts input to every supported base: -36..-2 and 2..36, or
// only 2..36 when positiveOnly is set. The value is parsed and evaluated
// once; advisory precision-exceeded results are included with Exact false.
func AllBases(input string, fromBase, precision int, positiveOnly bool) ([]SweepResult, error) {
	n, err := ParseNumeral(input, fromBase)
	if err != nil {
		return nil, err
	}
	dec, err := ToDecimal(n, precision)
	if err != nil {
		return nil, err
	}

	bases := make([]int, 0, 2*(MaxBase-MinBase+1))
	if !positiveOnly {
		for b := -MaxBase; b <= -MinBase; b++ {
			bases = append(bases, b)
		}
	}
	for b := MinBase; b <= MaxBase; b++ {
		bases = append(bases, b)
	}

	results := make([]SweepResult, 0, len(bases))
	for _, b := range bases {
		exp, err := FromDecimal(dec, b, precision)
		if err != nil && !IsPrecisionExceeded(err) {
			return nil, err
		}
		results = append(results, SweepResult{Base: b, Output: exp.String(), Exact: exp.Exact})
	}
	return results, nil
}
