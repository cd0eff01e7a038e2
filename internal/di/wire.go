//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/contextpack/contextpack/pkg/assembly"
	"github.com/contextpack/contextpack/pkg/eval"
)

// ProvideAssembler is an injector function - Wire will generate the implementation
func ProvideAssembler() (*assembly.Assembler, error) {
	wire.Build(
		ProvideCounter,
		ProvideEmbedder,
		ProvidePublisher,
		ProvideLogger,
		assembly.NewAssembler,
	)
	return nil, nil
}

// ProvideEvaluator is an injector function - Wire will generate the implementation
func ProvideEvaluator() (*eval.Evaluator, error) {
	wire.Build(
		ProvideGenerator,
		ProvideEmbedder,
		ProvidePublisher,
		ProvideLogger,
		eval.NewEvaluator,
	)
	return nil, nil
}
