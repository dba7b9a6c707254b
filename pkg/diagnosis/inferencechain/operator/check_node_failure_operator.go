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

package operator

import (
	"fmt"
	"strings"

	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
)

// CheckNodeFailureOperatorName is the registered name of the node failure
// root-cause rule.
const CheckNodeFailureOperatorName = "check_node_failure"

func init() {
	registerNewOperatorFunc(CheckNodeFailureOperatorName, newCheckNodeFailureOperator)
}

// CheckNodeFailureOperator identifies failed nodes as a root cause of a
// hanging training run, based on recent node failure reports.
type CheckNodeFailureOperator struct {
	dataManager *datastore.DataManager
}

func newCheckNodeFailureOperator(dataManager *datastore.DataManager) InferenceOperator {
	return &CheckNodeFailureOperator{
		dataManager: dataManager,
	}
}

// IsApplicable reports whether the inference is an observed training hang.
func (op *CheckNodeFailureOperator) IsApplicable(inference common.Inference) bool {
	return inference.Name == common.InferenceNameTraining &&
		inference.Attribute == common.InferenceAttributeIsOrNot &&
		inference.Description == common.InferenceDescriptionHang
}

// Infer emits a node failure root cause when non-stale failure reports
// exist. The reported node names are carried in the inference context.
func (op *CheckNodeFailureOperator) Infer(inference common.Inference) ([]common.Inference, error) {
	if op.dataManager == nil {
		return nil, fmt.Errorf("no data manager to check node failures")
	}
	reports := op.dataManager.GetData(common.DataTypeNodeFailure)
	if len(reports) == 0 {
		return []common.Inference{}, nil
	}

	nodes := make([]string, 0, len(reports))
	seen := make(map[string]bool)
	for _, report := range reports {
		if report.Content == "" || seen[report.Content] {
			continue
		}
		seen[report.Content] = true
		nodes = append(nodes, report.Content)
	}

	rootCause := common.NewInference(
		common.InferenceNameNode,
		common.InferenceAttributeIs,
		common.InferenceDescriptionFailure,
	)
	rootCause.Context = map[string]string{
		"nodes": strings.Join(nodes, ","),
	}
	return []common.Inference{rootCause}, nil
}
