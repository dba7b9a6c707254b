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

package diagnosis

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	log "github.com/golang/glog"
	"github.com/intelligent-machine-learning/easydl/master/pkg/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/config"
	"github.com/intelligent-machine-learning/easydl/master/pkg/datastore/recorder/mysql"
	diagnosiscommon "github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/datastore"
)

// Manager is the facade of the diagnosis subsystem. It accepts incoming
// diagnosis data, owns the data store and the diagnostician, and runs the
// background observation loop.
//
// The manager is either idle or observing. StartObserving spawns the loop
// and a second call while observing is rejected; StopObserving flips the
// flag the loop polls, so the loop finishes its current round and exits at
// the next check.
type Manager struct {
	locker            *sync.Mutex
	isObserving       bool
	jobMeta           *common.JobMeta
	dataManager       *datastore.DataManager
	diagnostician     *Diagnostician
	client            *mysql.Client
	observingInterval time.Duration
}

// NewManager creates a diagnosis Manager for one training-job run.
// Unset config keys fall back to the defaults in the diagnosis common
// package. Root-cause persistence is enabled only when a database url is
// configured.
func NewManager(jobMeta *common.JobMeta, conf *config.Config) *Manager {
	if jobMeta == nil {
		jobMeta = &common.JobMeta{}
	}
	intervalSecs := conf.GetInt(config.DiagnosisObservingIntervalSecs)
	if intervalSecs <= 0 {
		intervalSecs = diagnosiscommon.DefaultObservingIntervalSecs
	}
	dataManager := datastore.NewDataManager(
		conf.GetInt(config.DiagnosisDataExpireTimePeriodSecs),
		conf.GetInt(config.DiagnosisDataMaxCount),
	)

	var client *mysql.Client
	if conf.GetString(config.DBURL) != "" {
		client = mysql.NewClient(conf)
	}

	return &Manager{
		locker:            &sync.Mutex{},
		jobMeta:           jobMeta,
		dataManager:       dataManager,
		diagnostician:     NewDiagnostician(dataManager),
		client:            client,
		observingInterval: time.Duration(intervalSecs) * time.Second,
	}
}

// CollectDiagnosisData stores a reported runtime signal. It is valid in
// either manager state.
func (m *Manager) CollectDiagnosisData(data *diagnosiscommon.DiagnosisData) {
	m.dataManager.StoreData(data)
}

// PreCheck evaluates the pre-check chain before training starts. No
// pre-check inference is registered yet, so the evaluation returns empty
// results by contract.
func (m *Manager) PreCheck() {
	log.Info("Start Diagnosis Manager to pre-check training...")

	preChecks := []diagnosiscommon.Inference{}
	m.diagnostician.RegisterPreCheck(preChecks)
	for _, result := range m.diagnostician.CheckTraining() {
		log.Infof("Pre-check training result: %v", result)
	}
}

// StartObserving registers the default problem seed and spawns the
// background observation loop. A second call while observing is rejected.
func (m *Manager) StartObserving() error {
	m.locker.Lock()
	defer m.locker.Unlock()

	if m.isObserving {
		err := fmt.Errorf("the diagnosis observation has already started")
		log.Error(err)
		return err
	}
	log.Info("Start Diagnosis Manager to observe training...")

	problems := []diagnosiscommon.Inference{
		diagnosiscommon.NewInference(
			diagnosiscommon.InferenceNameTraining,
			diagnosiscommon.InferenceAttributeIsOrNot,
			diagnosiscommon.InferenceDescriptionHang,
		),
	}
	m.diagnostician.RegisterProblems(problems)
	m.isObserving = true

	go m.diagnoseFailures()
	log.Info("Diagnosis Manager is started")
	return nil
}

// StopObserving requests the observation loop to exit. The loop finishes
// its current round and stops at the next flag check. Calling it when idle
// is a no-op.
func (m *Manager) StopObserving() {
	m.locker.Lock()
	defer m.locker.Unlock()

	if !m.isObserving {
		return
	}
	log.Info("Stop Diagnosis Manager to observe training.")
	m.isObserving = false
}

func (m *Manager) observing() bool {
	m.locker.Lock()
	defer m.locker.Unlock()
	return m.isObserving
}

func (m *Manager) diagnoseFailures() {
	log.Info("Start to diagnose failures for observing.")
	for {
		if !m.observing() {
			log.Info("Stop to diagnose failures for observing.")
			return
		}
		m.diagnoseOnce()
		time.Sleep(m.observingInterval)
	}
}

// diagnoseOnce runs one observation round. A failure inside a round
// degrades to no detection for this cycle and never terminates the loop.
func (m *Manager) diagnoseOnce() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Diagnosis Manager] diagnosis round fails: %v", r)
		}
	}()

	log.Infof("Current diagnosis data size: %d.", m.dataManager.GetDataSize())
	observedProblems := m.diagnostician.ObserveTraining()
	for _, problem := range observedProblems {
		log.Infof("Observe problem in diagnosing: %v", problem)
		rootCauses := m.diagnostician.DiagnoseFailure(problem)
		for _, rootCause := range rootCauses {
			log.Infof("Identify root cause: %v", rootCause)
			m.persistRootCause(problem, rootCause)
		}
	}
}

// persistRootCause records an identified root cause. Persistence is
// best-effort: a recorder failure is logged and never affects the loop.
func (m *Manager) persistRootCause(problem diagnosiscommon.Inference, rootCause diagnosiscommon.Inference) {
	if m.client == nil {
		return
	}
	contextVal, err := json.Marshal(rootCause.Context)
	if err != nil {
		log.Errorf("fail to marshal the context of root cause %v: %v", rootCause, err)
		contextVal = nil
	}
	record := &mysql.DiagnosisRecord{
		UID:       fmt.Sprintf("%s-%s", m.jobMeta.UUID, rootCause.Key()),
		JobUUID:   m.jobMeta.UUID,
		Problem:   problem.Key(),
		RootCause: rootCause.Key(),
		Context:   string(contextVal),
		CreatedAt: time.Now(),
	}
	if err = m.client.DiagnosisRecordRecorder.Upsert(record); err != nil {
		log.Errorf("fail to persist the diagnosis record of %s: %v", m.jobMeta.UUID, err)
	}
}
