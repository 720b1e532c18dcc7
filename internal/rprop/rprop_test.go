package rprop_test

import (
	"testing"

	"github.com/josestg/rangeblaze/internal/rprop"
)

func TestAlgebraProperties(t *testing.T) {
	for _, spec := range rprop.All() {
		t.Run(spec.Name, spec.Test)
	}
}
