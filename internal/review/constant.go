package review

import "strings"

// PublicationFormats are the journals a review can target.
var PublicationFormats = []string{
	"Physical Review Letters",
	"Nature Physics",
	"Science",
	"Journal of High Energy Physics",
	"Classical and Quantum Gravity",
	"arXiv (Preprint)",
}

// IsPublicationFormat reports whether f is a known format.
func IsPublicationFormat(f string) bool {
	for _, known := range PublicationFormats {
		if known == f {
			return true
		}
	}
	return false
}

// ExampleTexts holds a sample passage per section for trying the reviewer.
var ExampleTexts = map[Section]string{
	SectionAbstract: "The holographic principle posits a fundamental equivalence between a theory of gravity in a (d+1)-dimensional volume and a quantum field theory on its d-dimensional boundary. " +
		"We investigate this duality in the context of AdS/CFT correspondence by examining entanglement entropy in the boundary CFT. " +
		"We demonstrate that for a spherical entangling surface, the leading term of the entropy, calculated via the Ryu-Takayanagi formula, precisely matches the Bekenstein-Hawking entropy of a corresponding black hole in the bulk AdS spacetime. " +
		"This work introduces a novel regularization scheme for the minimal surface area calculation, resolving prior divergences and providing compelling evidence that spacetime geometry itself emerges from the entanglement structure of the boundary quantum state. " +
		"Our results suggest that entanglement is not merely a feature of quantum systems, but the fundamental constituent of spacetime geometry.",
	SectionIntroduction: "The reconciliation of general relativity and quantum mechanics remains the most profound challenge in theoretical physics. " +
		"Attempts to quantize gravity directly have been plagued by non-renormalizable infinities, suggesting that a more fundamental reconceptualization of spacetime is required. " +
		"Loop Quantum Gravity (LQG) offers one such approach, proposing that spacetime is not a smooth continuum but is instead composed of discrete, quantized 'atoms' of space, represented by spin networks. " +
		"Unlike string theory, LQG is background-independent, making no a priori assumptions about the spacetime manifold. " +
		"Previous work has successfully quantized the area and volume operators, yielding a discrete spectrum. " +
		"However, a significant gap remains in understanding the emergence of a classical, smooth spacetime at low energies and the dynamics of these quantum states. " +
		"This paper addresses this gap by deriving the semi-classical limit of the Hamiltonian constraint operator, demonstrating that under coarse-graining, the dynamics approximate the Wheeler-DeWitt equation and, subsequently, Einstein's field equations.",
	SectionMethods: "Our analysis is founded on the spin foam formalism of Loop Quantum Gravity. " +
		"We define the transition amplitude between initial and final spin network states, |ψ_i⟩ and |ψ_f⟩, via a path integral over all possible 2-complexes (spin foams) bounded by these networks. " +
		"The amplitude Z is given by Z = ∑_σ w(σ) A(σ), where the sum is over all spin foams σ, w(σ) is a weighting factor, and A(σ) is the amplitude for a single foam. " +
		"To regularize the path integral, we employ the Engle-Pereira-Rovelli-Livine (EPRL) model. " +
		"The semi-classical analysis is performed using coherent spin network states, which are peaked on classical geometries. " +
		"We introduce a coarse-graining operator that averages the Hamiltonian constraint over a large number of vertices, and we compute its expectation value in these coherent states.",
	SectionResults: "The expectation value of the coarse-grained Hamiltonian constraint operator, ⟨Ĉ⟩, was computed for coherent states peaked on a flat Friedmann-Lemaître-Robertson-Walker (FLRW) metric. " +
		"Our primary result, shown in Figure 1, is that in the limit of large spin representations j and a large number of vertices N, the operator expectation value converges to the classical Friedmann equation: ⟨Ĉ⟩ ≈ (ȧ/a)² - (8πG/3)ρ = 0. " +
		"The leading term scales correctly with the Planck length, and the quantum corrections are suppressed by a factor of 1/j. " +
		"The numerical simulations show a power-law convergence to the classical result with an exponent of -1.02 ± 0.05, consistent with theoretical predictions.",
	SectionConclusion: "We have demonstrated that the dynamics of Loop Quantum Gravity, as described by the EPRL spin foam model, possess a valid semi-classical limit consistent with classical general relativity for a homogeneous, isotropic universe. " +
		"By calculating the expectation value of the Hamiltonian constraint in a coherent state basis, we successfully derived the Friedmann equation from the fundamental quantum dynamics. " +
		"Key limitations of this work include the restriction to a specific cosmological model and the use of coherent states which may not represent all physical scenarios. " +
		"Future work will involve extending this analysis to include inhomogeneities, which could provide a quantum-gravitational origin for the cosmic microwave background fluctuations.",
	SectionFigures: "Figure 1: Log-log plot of the deviation of the coarse-grained Hamiltonian constraint expectation value |⟨Ĉ⟩| from zero as a function of the number of vertices N in the spin foam. " +
		"Data is shown for average spin j=10 (blue circles), j=20 (green squares), and j=50 (red triangles). " +
		"The solid lines represent a power-law fit, yielding an exponent of approximately -1, demonstrating convergence to the classical constraint. " +
		"The inset shows the probability distribution of Ĉ for N=10^5 and j=50, which is sharply peaked around zero, confirming the semi-classical nature of the state.",
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
