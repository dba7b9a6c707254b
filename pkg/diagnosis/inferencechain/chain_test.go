// Copyright 2024 The DLRover Authors. All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inferencechain

import (
	"fmt"
	"testing"

	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/inferencechain/operator"
	"github.com/stretchr/testify/assert"
)

type fakeOperator struct {
	applicable func(common.Inference) bool
	infer      func(common.Inference) ([]common.Inference, error)
}

func (op *fakeOperator) IsApplicable(inference common.Inference) bool {
	return op.applicable(inference)
}

func (op *fakeOperator) Infer(inference common.Inference) ([]common.Inference, error) {
	return op.infer(inference)
}

func hangHypothesis() common.Inference {
	return common.NewInference(
		common.InferenceNameTraining,
		common.InferenceAttributeIsOrNot,
		common.InferenceDescriptionHang,
	)
}

func nodeFailure() common.Inference {
	return common.NewInference(
		common.InferenceNameNode,
		common.InferenceAttributeIs,
		common.InferenceDescriptionFailure,
	)
}

func inferenceKeys(inferences []common.Inference) []string {
	keys := make([]string, 0, len(inferences))
	for _, inference := range inferences {
		keys = append(keys, inference.Key())
	}
	return keys
}

func TestInferIsDeterministic(t *testing.T) {
	confirmHang := &fakeOperator{
		applicable: func(inference common.Inference) bool {
			return inference.Equal(hangHypothesis())
		},
		infer: func(inference common.Inference) ([]common.Inference, error) {
			return []common.Inference{hangHypothesis(), nodeFailure()}, nil
		},
	}

	seeds := []common.Inference{hangHypothesis()}
	operators := []operator.InferenceOperator{confirmHang}

	first := NewInferenceChain(seeds, operators).Infer()
	second := NewInferenceChain(seeds, operators).Infer()
	assert.ElementsMatch(t, inferenceKeys(first), inferenceKeys(second))
	assert.ElementsMatch(t, inferenceKeys(first), []string{hangHypothesis().Key(), nodeFailure().Key()})
}

func TestInferDeduplicatesResults(t *testing.T) {
	newOp := func() operator.InferenceOperator {
		return &fakeOperator{
			applicable: func(inference common.Inference) bool { return true },
			infer: func(inference common.Inference) ([]common.Inference, error) {
				return []common.Inference{nodeFailure()}, nil
			},
		}
	}

	chain := NewInferenceChain(
		[]common.Inference{hangHypothesis()},
		[]operator.InferenceOperator{newOp(), newOp()},
	)
	results := chain.Infer()
	assert.Equal(t, 1, len(results))
	assert.True(t, results[0].Equal(nodeFailure()))
}

func TestInferIsolatesFailingOperators(t *testing.T) {
	failing := &fakeOperator{
		applicable: func(inference common.Inference) bool { return true },
		infer: func(inference common.Inference) ([]common.Inference, error) {
			return nil, fmt.Errorf("malformed event payload")
		},
	}
	panicking := &fakeOperator{
		applicable: func(inference common.Inference) bool { return true },
		infer: func(inference common.Inference) ([]common.Inference, error) {
			panic("broken rule")
		},
	}
	working := &fakeOperator{
		applicable: func(inference common.Inference) bool { return true },
		infer: func(inference common.Inference) ([]common.Inference, error) {
			return []common.Inference{nodeFailure()}, nil
		},
	}

	chain := NewInferenceChain(
		[]common.Inference{hangHypothesis()},
		[]operator.InferenceOperator{failing, panicking, working},
	)
	results := chain.Infer()
	assert.Equal(t, 1, len(results))
	assert.True(t, results[0].Equal(nodeFailure()))
}

func TestInferTerminatesOnCyclicCatalogue(t *testing.T) {
	hangToFailure := &fakeOperator{
		applicable: func(inference common.Inference) bool {
			return inference.Equal(hangHypothesis())
		},
		infer: func(inference common.Inference) ([]common.Inference, error) {
			return []common.Inference{nodeFailure()}, nil
		},
	}
	failureToHang := &fakeOperator{
		applicable: func(inference common.Inference) bool {
			return inference.Equal(nodeFailure())
		},
		infer: func(inference common.Inference) ([]common.Inference, error) {
			return []common.Inference{hangHypothesis()}, nil
		},
	}

	chain := NewInferenceChain(
		[]common.Inference{hangHypothesis()},
		[]operator.InferenceOperator{hangToFailure, failureToHang},
	)
	results := chain.Infer()
	assert.ElementsMatch(t, inferenceKeys(results), []string{hangHypothesis().Key(), nodeFailure().Key()})
}

func TestInferWithoutApplicableOperators(t *testing.T) {
	chain := NewInferenceChain([]common.Inference{hangHypothesis()}, []operator.InferenceOperator{})
	assert.Equal(t, 0, len(chain.Infer()))
}
