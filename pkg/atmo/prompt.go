package atmo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Collect reads the eight parameters from sequential prompts, one per
// feature in the fixed order. The first value that fails to parse as a
// number aborts the collection, there is no retry.
func Collect(r io.Reader, w io.Writer) (*Params, error) {
	fmt.Fprintln(w, "Enter Essential Exoplanet Parameters:")

	scanner := bufio.NewScanner(r)
	p := &Params{}
	for _, f := range Features {
		if f.Unit != "" {
			fmt.Fprintf(w, "%s (%s): ", f.Label, f.Unit)
		} else {
			fmt.Fprintf(w, "%s: ", f.Label)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to read %s", f.Key)
			}
			return nil, errors.Errorf("no input for %s", f.Key)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for %s", f.Key)
		}
		p.set(f.Key, v)
	}
	return p, nil
}
