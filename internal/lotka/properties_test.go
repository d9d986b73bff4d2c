package lotka

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// finalError is the Euclidean distance between the last samples of two runs.
func finalError(a, b *Trajectory) float64 {
	_, pa, da := a.Final()
	_, pb, db := b.Final()
	return math.Hypot(pa-pb, da-db)
}

var _ = Describe("Integrate", func() {
	reference := DefaultParams()

	scenarios := []struct {
		name   string
		prm    Params
		p0, d0 float64
		tmax   float64
		h      float64
	}{
		{"reference", reference, 80, 20, 50, 0.05},
		{"coarse step", reference, 80, 20, 100, 0.5},
		{"prey only", reference, 80, 0, 10, 0.1},
		{"predators only", reference, 0, 20, 30, 0.1},
		{"fast dynamics", Params{Alpha: 2.0, Beta: 0.5, Delta: 0.2, Gamma: 1.5}, 10, 5, 20, 0.25},
		{"extinction overshoot", reference, 80, 20, 20, 1.0},
	}

	for _, scheme := range Schemes() {
		scheme := scheme
		Context("with "+scheme.String(), func() {
			for _, sc := range scenarios {
				sc := sc

				It("keeps populations non-negative for "+sc.name, func() {
					tr, err := Integrate(scheme, sc.prm, sc.p0, sc.d0, sc.tmax, sc.h)
					Expect(err).NotTo(HaveOccurred())
					for k := range tr.T {
						Expect(tr.P[k]).To(BeNumerically(">=", 0), "P at sample %d", k)
						Expect(tr.D[k]).To(BeNumerically(">=", 0), "D at sample %d", k)
					}
				})

				It("samples a uniform grid starting at zero for "+sc.name, func() {
					tr, err := Integrate(scheme, sc.prm, sc.p0, sc.d0, sc.tmax, sc.h)
					Expect(err).NotTo(HaveOccurred())
					Expect(tr.T[0]).To(Equal(0.0))
					Expect(tr.Len()).To(Equal(SampleCount(sc.tmax, sc.h)))
					for k := 1; k < tr.Len(); k++ {
						Expect(tr.T[k] - tr.T[k-1]).To(BeNumerically("~", sc.h, 1e-9))
					}
					tf, _, _ := tr.Final()
					Expect(tf).To(BeNumerically("<=", sc.tmax+1e-9))
					Expect(sc.tmax - tf).To(BeNumerically("<", sc.h))
				})

				It("is deterministic for "+sc.name, func() {
					a, err := Integrate(scheme, sc.prm, sc.p0, sc.d0, sc.tmax, sc.h)
					Expect(err).NotTo(HaveOccurred())
					b, err := Integrate(scheme, sc.prm, sc.p0, sc.d0, sc.tmax, sc.h)
					Expect(err).NotTo(HaveOccurred())
					Expect(b.T).To(Equal(a.T))
					Expect(b.P).To(Equal(a.P))
					Expect(b.D).To(Equal(a.D))
				})
			}
		})
	}

	DescribeTable("stays at the equilibrium point",
		func(scheme Scheme, prm Params) {
			p0, d0, err := prm.Equilibrium()
			Expect(err).NotTo(HaveOccurred())

			tr, err := Integrate(scheme, prm, p0, d0, 50, 0.05)
			Expect(err).NotTo(HaveOccurred())
			for k := range tr.T {
				Expect(tr.P[k]).To(BeNumerically("~", p0, 1e-9*p0))
				Expect(tr.D[k]).To(BeNumerically("~", d0, 1e-9*d0))
			}
		},
		Entry("euler, reference params", Euler, reference),
		Entry("rk4, reference params", RK4, reference),
		Entry("euler, fast dynamics", Euler, Params{Alpha: 2.0, Beta: 0.5, Delta: 0.2, Gamma: 1.5}),
		Entry("rk4, fast dynamics", RK4, Params{Alpha: 2.0, Beta: 0.5, Delta: 0.2, Gamma: 1.5}),
		Entry("rk4, slow dynamics", RK4, Params{Alpha: 0.1, Beta: 0.002, Delta: 0.001, Gamma: 0.05}),
	)

	Describe("convergence on the reference scenario", func() {
		const tmax = 10.0
		var ref *Trajectory

		BeforeEach(func() {
			var err error
			ref, err = Integrate(RK4, reference, 80, 20, tmax, 0.001)
			Expect(err).NotTo(HaveOccurred())
		})

		errAt := func(scheme Scheme, h float64) float64 {
			tr, err := Integrate(scheme, reference, 80, 20, tmax, h)
			Expect(err).NotTo(HaveOccurred())
			return finalError(tr, ref)
		}

		It("roughly halves the Euler error when h halves", func() {
			ratio := errAt(Euler, 0.005) / errAt(Euler, 0.0025)
			Expect(ratio).To(BeNumerically("~", 2, 0.3))
		})

		It("cuts the RK4 error by roughly 16 when h halves", func() {
			ratio := errAt(RK4, 0.05) / errAt(RK4, 0.025)
			Expect(ratio).To(BeNumerically("~", 16, 4))
		})

		It("leaves RK4 far more accurate than Euler at the same step", func() {
			Expect(errAt(RK4, 0.05)).To(BeNumerically("<", errAt(Euler, 0.05)/100))
		})
	})
})
