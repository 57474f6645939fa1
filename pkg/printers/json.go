package printers

import (
	"encoding/json"
	"fmt"
)

// JSON writes v indented.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.w(), string(b))
	return err
}
