package projectile_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestProjectile(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Projectile Suite")
}
