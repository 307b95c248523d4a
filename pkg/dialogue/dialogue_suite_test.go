package dialogue_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDialogue(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dialogue Suite")
}
