package stackup

// Conversion factors for thickness units found in fab drawings.
const (
	// mmPerMil converts thousandths of an inch to millimeters.
	mmPerMil = 0.0254

	// mmPerOz converts copper weight in oz/ft² to finished thickness.
	mmPerOz = 0.035
)

// MilsToMM converts mils (thousandths of an inch) to millimeters.
func MilsToMM(mils float64) float64 {
	return mils * mmPerMil
}

// OzToMM converts copper weight in ounces per square foot to the
// corresponding plated thickness in millimeters (1 oz ≈ 35 µm).
func OzToMM(oz float64) float64 {
	return oz * mmPerOz
}

// Tolerance returns the manufacturing tolerance for a thickness,
// a flat 10% of the nominal value.
func Tolerance(thicknessMM float64) float64 {
	return thicknessMM * 0.1
}
