package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "Hello World from EKS!", svc.Greet())
}

func TestGreetIsStable(t *testing.T) {
	svc := NewService()

	first := svc.Greet()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, svc.Greet())
	}
}
