package sed

import "gonum.org/v1/gonum/floats"

// Spectrum is a dense spectral energy distribution: one luminosity value
// per tabulated wavelength. The wavelength sampling is implied by the grid
// the spectrum came from; Spectrum itself only carries the values, so
// spectra from the same grid combine freely.
type Spectrum struct {
	Lnu []float64
}

// NewSpectrum returns an all-zero spectrum of nlam wavelength elements.
func NewSpectrum(nlam int) *Spectrum {
	return &Spectrum{Lnu: make([]float64, nlam)}
}

// Len returns the number of wavelength elements. Complexity: O(1).
func (s *Spectrum) Len() int { return len(s.Lnu) }

// Add accumulates other into s element-wise. Both spectra must share the
// same wavelength count; ErrSpectrumLength otherwise. Complexity: O(nlam).
func (s *Spectrum) Add(other *Spectrum) error {
	if other.Len() != s.Len() {
		return ErrSpectrumLength
	}
	floats.Add(s.Lnu, other.Lnu)

	return nil
}

// Scale multiplies every element of s by c in place. Complexity: O(nlam).
func (s *Spectrum) Scale(c float64) {
	floats.Scale(c, s.Lnu)
}

// Clone returns an independent deep copy of s. Complexity: O(nlam).
func (s *Spectrum) Clone() *Spectrum {
	lnu := make([]float64, len(s.Lnu))
	copy(lnu, s.Lnu)

	return &Spectrum{Lnu: lnu}
}

// Sum returns the bolometric total, the sum over all wavelength elements.
// Complexity: O(nlam).
func (s *Spectrum) Sum() float64 {
	return floats.Sum(s.Lnu)
}
