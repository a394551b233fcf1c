// Package design provides biquad coefficient design for the filters the
// analyzers need: RBJ highpass and high-shelf sections.
//
// Invalid parameters (non-positive or super-Nyquist frequencies) yield
// zero coefficients, i.e. a section that outputs silence, rather than an
// error; callers own parameter validation.
package design
