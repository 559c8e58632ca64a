package atmo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const reportBorder = "===================================="

// Citations are the referenced research papers printed at the end of
// every report. They do not depend on the computed data.
var Citations = []string{
	`Armstrong et al., 2020 – “Atmospheric Retention Limits of Exoplanets Around M-Dwarfs”`,
	`Seager & Deming, 2019 – “Exoplanet Atmospheres and Photochemical Modeling”`,
	`Lopez & Fortney, 2013 – “The Role of Mass and Stellar Flux in Shaping Exoplanet Atmospheres”`,
	`Madhusudhan et al., 2014 – “A Survey of Chemical Compositions of Transiting Exoplanets”`,
}

// WriteReport prints the bordered composition report followed by the
// citation list.
func WriteReport(w io.Writer, c Composition) error {
	if len(c) != len(Gases) {
		return errors.Errorf("composition has %d components, want %d", len(c), len(Gases))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Atmospheric Composition Report")
	fmt.Fprintln(w, reportBorder)
	for i, gas := range Gases {
		fmt.Fprintf(w, "%3s: %.2f%% — %s\n", gas, c[i], Classify(c[i]))
	}
	fmt.Fprintln(w, reportBorder)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Referenced Research Papers:")
	for _, cite := range Citations {
		fmt.Fprintln(w, cite)
	}
	return nil
}
