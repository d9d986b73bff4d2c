package lotka

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLotkaProperties(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Lotka-Volterra Properties Suite")
}
