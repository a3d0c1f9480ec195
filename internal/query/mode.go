package query

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Mode selects what is looked up for the terms of a request.
type Mode string

func (m *Mode) Set(val string) error {
	for _, mode := range AllModes {
		if val == string(mode) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("invalid mode: %s", val)
}

func (m Mode) String() string {
	return string(m)
}

func (m *Mode) Type() string {
	return "Mode"
}

const (
	ModeShow        Mode = "show"
	ModeTranslation Mode = "translate"
	ModeJyutping    Mode = "jyutping"
	ModeJSON        Mode = "json"
	ModeRandom      Mode = "random"
	ModeReverse     Mode = "reverse"
)

var (
	_        pflag.Value = (*Mode)(nil)
	AllModes             = []Mode{ModeShow, ModeTranslation, ModeJyutping, ModeJSON, ModeRandom, ModeReverse}
)
