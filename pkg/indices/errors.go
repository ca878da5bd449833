package indices

import (
	"fmt"
	"strings"
)

// InvalidIncludesError is returned when an includes list references variables
// absent from the name-to-index mapping. It signals a variable-list mismatch
// between dataset and model configuration and cannot be fixed locally.
type InvalidIncludesError struct {
	Missing []string
}

func (e *InvalidIncludesError) Error() string {
	return fmt.Sprintf("indexing has invalid entries [%s], not in dataset", strings.Join(e.Missing, ", "))
}
