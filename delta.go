package delta2html

import (
	"encoding/json"
	"fmt"
)

// ParseDeltaJSON decodes a Delta document from its JSON interchange form,
// e.g. {"ops":[{"insert":"Hello\n"}]}. The only shape requirement is the
// presence of an ops array; op contents are validated later, during Parse.
func ParseDeltaJSON(data []byte) (Delta, error) {
	var d Delta
	if err := json.Unmarshal(data, &d); err != nil {
		return Delta{}, fmt.Errorf("%w: %v", ErrDeltaParse, err)
	}
	if d.Ops == nil {
		return Delta{}, ErrMissingOps
	}
	return d, nil
}
