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

	log "github.com/golang/glog"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/inferencechain/operator"
)

// maxInferenceDepth bounds the re-seeding rounds of one evaluation. Operator
// catalogues are not guaranteed acyclic, so the visited set alone already
// guarantees termination; the depth cap additionally bounds one round trip.
const maxInferenceDepth = 10

// InferenceChain evaluates an ordered operator catalogue over a set of seed
// inferences. Inferences produced by an operator are fed back as new seeds
// until no unseen proposition appears or the depth cap is reached. The
// result is the de-duplicated set of all produced inferences; seeds only
// appear in the result when some operator re-derives them.
type InferenceChain struct {
	inferences []common.Inference
	operators  []operator.InferenceOperator
}

// NewInferenceChain creates an InferenceChain with the given seeds and
// operator catalogue.
func NewInferenceChain(inferences []common.Inference, operators []operator.InferenceOperator) *InferenceChain {
	return &InferenceChain{
		inferences: inferences,
		operators:  operators,
	}
}

// Infer computes the terminal set of inferences. A failing operator
// contributes nothing for that input and evaluation proceeds with the
// remaining operators and seeds.
func (ic *InferenceChain) Infer() []common.Inference {
	results := make([]common.Inference, 0)
	resultKeys := make(map[string]bool)
	visited := make(map[string]bool)

	pending := make([]common.Inference, len(ic.inferences))
	copy(pending, ic.inferences)
	for _, inference := range pending {
		visited[inference.Key()] = true
	}

	for depth := 0; depth < maxInferenceDepth && len(pending) > 0; depth++ {
		next := make([]common.Inference, 0)
		for _, inference := range pending {
			for _, op := range ic.operators {
				if op == nil || !op.IsApplicable(inference) {
					continue
				}
				outputs, err := runOperator(op, inference)
				if err != nil {
					log.Warningf("inference operator fails on %v: %v", inference, err)
					continue
				}
				for _, output := range outputs {
					key := output.Key()
					if !resultKeys[key] {
						resultKeys[key] = true
						results = append(results, output)
					}
					if !visited[key] {
						visited[key] = true
						next = append(next, output)
					}
				}
			}
		}
		pending = next
	}
	return results
}

// runOperator contains an operator failure, including a panic, so that one
// broken rule never aborts the whole evaluation.
func runOperator(op operator.InferenceOperator, inference common.Inference) (outputs []common.Inference, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operator panics: %v", r)
		}
	}()
	return op.Infer(inference)
}
