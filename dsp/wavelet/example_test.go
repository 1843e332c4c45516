package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-cwt/dsp/wavelet"
)

func ExampleMorlet_Support() {
	m, err := wavelet.NewMorlet(1.0)
	if err != nil {
		panic(err)
	}

	fmt.Println(m.Support(1.0), m.Support(4.0))

	// Output:
	// 3 12
}

func ExampleMorlet_GenerateMother() {
	m, err := wavelet.NewMorlet(2.0)
	if err != nil {
		panic(err)
	}

	mother := m.GenerateMother(8)
	fmt.Printf("len=%d peak=%.4f\n", len(mother), mother[4])

	// Output:
	// len=8 peak=1.8828
}
