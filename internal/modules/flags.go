package modules

import (
	"fmt"

	"github.com/spf13/pflag"
)

// flagReader collects the first lookup error so option extraction reads as
// a flat list of assignments.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) str(name string) string {
	v, err := r.fs.GetString(name)
	r.keep(name, err)
	return v
}

func (r *flagReader) strs(name string) []string {
	v, err := r.fs.GetStringArray(name)
	r.keep(name, err)
	return v
}

func (r *flagReader) boolean(name string) bool {
	v, err := r.fs.GetBool(name)
	r.keep(name, err)
	return v
}

func (r *flagReader) keep(name string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("reading flag --%s: %w", name, err)
	}
}
