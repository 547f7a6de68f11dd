package models_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/models"
)

func TestModels(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Models Suite")
}

var _ = Describe("Lattice models", func() {
	DescribeTable("band bottom at Γ",
		func(name string, bottom float64) {
			m, err := models.Get(name)
			Expect(err).NotTo(HaveOccurred())

			e, err := m.Dispersion(field.Of(0.0), field.Of(0.0))
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Data()[0]).To(BeNumerically("~", bottom, 1e-12))
			Expect(m.Config().EMin()).To(BeNumerically("~", bottom, 1e-12))
		},
		Entry("square", "square", -4.0),
		Entry("triangular", "triangular", -6.0),
		Entry("dice", "dice", -3*math.Sqrt2),
	)

	Describe("density of states", func() {
		DescribeTable("integrates to the dispersive state count",
			func(name string, states float64) {
				m, err := models.Get(name)
				Expect(err).NotTo(HaveOccurred())

				total, err := dos.Normalization(m.Solver(), 20003)
				Expect(err).NotTo(HaveOccurred())
				Expect(total).To(BeNumerically("~", states, 1e-3))
			},
			Entry("square", "square", 1.0),
			Entry("triangular", "triangular", 1.0),
			// the flat band at zero carries no dispersive weight
			Entry("dice", "dice", 2.0),
		)

		It("is zero outside every band", func() {
			for _, name := range models.Names() {
				m, _ := models.Get(name)
				cfg := m.Config()
				rho, err := m.DOS(field.Vector(cfg.EMin()-0.1, cfg.EMax()+0.1), true)
				Expect(err).NotTo(HaveOccurred())
				Expect(rho.Data()).To(Equal([]float64{0, 0}))
			}
		})

		It("replaces singular points with a finite proxy when asked", func() {
			m, _ := models.Get("square")
			rho, err := m.DOS(field.Of(0.0), false)
			Expect(err).NotTo(HaveOccurred())
			v, _ := rho.Item()
			Expect(math.IsInf(v, 0)).To(BeFalse())
			Expect(v).To(Equal(dos.SquareProxy))
		})
	})

	Describe("capabilities", func() {
		It("exposes the Bloch Hamiltonian only on the dice lattice", func() {
			for _, name := range models.Names() {
				m, _ := models.Get(name)
				_, ok := m.(models.HamiltonianModel)
				Expect(ok).To(Equal(name == "dice"), name)
			}
		})

		It("exposes GDOS only on the square lattice", func() {
			for _, name := range models.Names() {
				m, _ := models.Get(name)
				_, ok := m.(models.GDOSModel)
				Expect(ok).To(Equal(name == "square"), name)
			}
		})
	})

	It("rejects unknown lattices", func() {
		_, err := models.Get("honeycomb")
		Expect(err).To(MatchError(models.ErrUnknownModel))
	})
})
