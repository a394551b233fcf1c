// Package biquad provides the biquad (second-order IIR) filter runtime
// behind the K-weighting pre-filter.
//
// A [Section] implements Direct Form II Transposed processing for a
// single second-order section defined by [Coefficients]. Coefficient
// design lives in dsp/filter/design.
package biquad
