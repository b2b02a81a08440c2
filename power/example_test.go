package power_test

import (
	"fmt"

	"github.com/cwbudde/algo-cosmo/power"
)

func ExampleNewTable() {
	// Tabulate a known power law and interpolate off the grid; log-log
	// interpolation reproduces power laws exactly.
	ref := power.PowerLaw{Amp: 3, Index: -2}

	ks := []float64{0.001, 0.01, 0.1, 1, 10}
	ps := make([]float64, len(ks))

	for i, k := range ks {
		ps[i] = ref.At(k)
	}

	tab, err := power.NewTable(ks, ps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", tab.At(0.55))
	// Output:
	// 9.9174
}
