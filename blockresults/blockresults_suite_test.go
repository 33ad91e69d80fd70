package blockresults_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBlockResults(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "blockresults suite")
}
