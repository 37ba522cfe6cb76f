package trainer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EMSL-Computing/PIML4PDE/internal/autodiff"
	"github.com/EMSL-Computing/PIML4PDE/internal/backend/cpu"
	"github.com/EMSL-Computing/PIML4PDE/internal/nn"
	"github.com/EMSL-Computing/PIML4PDE/internal/optim"
	"github.com/EMSL-Computing/PIML4PDE/internal/pde"
	"github.com/EMSL-Computing/PIML4PDE/internal/sampler"
)

func constantHeadProblem() pde.Laplace1D {
	return pde.Laplace1D{
		XMin: 0, XMax: 1,
		BC:      pde.Dirichlet{LeftHead: 1.0, RightHead: 1.0},
		Weights: pde.EqualWeights(),
	}
}

func TestRun_ConvergesOnConstantHead(t *testing.T) {
	ad := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(3))
	net := nn.NewMLP([]int{1, 8, 1}, rng, ad)
	xs := sampler.Uniform(sampler.Options{XMin: 0, XMax: 1, Count: 20, Seed: 5})
	adam := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.01})

	result, err := Run(net, constantHeadProblem(), xs, adam, ad, RunConfig{Epochs: 2000})
	require.NoError(t, err)

	assert.Len(t, result.History, 2000)
	assert.Equal(t, 2000, result.EpochsRun)
	assert.Less(t, result.BestLoss, 1e-3)
	assert.Less(t, result.History[1999].Loss, result.History[0].Loss)
}

func TestRun_BestLossMatchesHistoryMinimum(t *testing.T) {
	ad := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(7))
	net := nn.NewMLP([]int{1, 6, 1}, rng, ad)
	xs := sampler.Uniform(sampler.Options{XMin: 0, XMax: 1, Count: 10, Seed: 2})
	adam := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.01})

	result, err := Run(net, constantHeadProblem(), xs, adam, ad, RunConfig{Epochs: 300})
	require.NoError(t, err)

	min := math.Inf(1)
	for _, h := range result.History {
		if h.Loss < min {
			min = h.Loss
		}
	}
	assert.Equal(t, min, result.BestLoss)
	assert.Greater(t, result.BestEpoch, 0)
}

func TestRun_DivergenceAborts(t *testing.T) {
	ad := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(1))
	net := nn.NewMLP([]int{1, 4, 1}, rng, ad)
	xs := sampler.Uniform(sampler.Options{XMin: 0, XMax: 1, Count: 10, Seed: 1})

	// An absurd learning rate overflows the parameters within a few
	// epochs: the loss squares the boundary mismatch every pass.
	sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 1e30})

	result, err := Run(net, constantHeadProblem(), xs, sgd, ad, RunConfig{Epochs: 50})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiverged)

	// The epochs completed before the abort are all finite.
	assert.NotEmpty(t, result.History)
	assert.Less(t, result.EpochsRun, 50)
	assert.False(t, math.IsInf(result.BestLoss, 0))
	assert.False(t, math.IsNaN(result.BestLoss))
	for _, h := range result.History {
		assert.False(t, math.IsNaN(h.Loss))
		assert.False(t, math.IsInf(h.Loss, 0))
	}
}

func TestRun_RejectsNonPositiveEpochs(t *testing.T) {
	ad := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(1))
	net := nn.NewMLP([]int{1, 4, 1}, rng, ad)
	adam := optim.NewAdam(net.Parameters(), optim.AdamConfig{})

	_, err := Run(net, constantHeadProblem(), []float64{0.5}, adam, ad, RunConfig{Epochs: 0})
	assert.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	train := func() Result {
		ad := autodiff.New(cpu.New())
		rng := rand.New(rand.NewSource(13))
		net := nn.NewMLP([]int{1, 8, 1}, rng, ad)
		xs := sampler.Uniform(sampler.Options{XMin: 0, XMax: 1, Count: 15, Seed: 4})
		adam := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.01})

		result, err := Run(net, constantHeadProblem(), xs, adam, ad, RunConfig{Epochs: 200})
		require.NoError(t, err)
		return result
	}

	a := train()
	b := train()
	// Bit-for-bit repeatable: same seeds, same iteration order.
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.BestLoss, b.BestLoss)
}
