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

package server

import (
	"context"
	"time"

	"github.com/intelligent-machine-learning/easydl/master/pkg/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/config"
	"github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis"
	diagnosiscommon "github.com/intelligent-machine-learning/easydl/master/pkg/diagnosis/common"
	pb "github.com/intelligent-machine-learning/easydl/master/pkg/proto"
)

// DiagnosisServer is the gRPC servicer of the diagnosis master. Training
// components report their runtime signals through it.
type DiagnosisServer struct {
	pb.UnimplementedDiagnosisMasterServer
	conf    *config.Config
	manager *diagnosis.Manager
}

// NewDiagnosisServer creates a DiagnosisServer instance
func NewDiagnosisServer(conf *config.Config) (*DiagnosisServer, error) {
	jobMeta := &common.JobMeta{
		Name: conf.GetString(config.JobName),
		UUID: conf.GetString(config.JobUUID),
	}
	return &DiagnosisServer{
		conf:    conf,
		manager: diagnosis.NewManager(jobMeta, conf),
	}, nil
}

// Run pre-checks training and starts the observation loop. The loop stops
// when the context is cancelled.
func (s *DiagnosisServer) Run(ctx context.Context, errReporter common.ErrorReporter) error {
	s.manager.PreCheck()
	if err := s.manager.StartObserving(); err != nil {
		errReporter.ReportError(ctx, common.NewError("DiagnosisServer", err))
		return err
	}
	go func() {
		<-ctx.Done()
		s.manager.StopObserving()
	}()
	return nil
}

// ReportDiagnosisData stores a reported runtime signal into the diagnosis
// data store.
func (s *DiagnosisServer) ReportDiagnosisData(ctx context.Context, in *pb.DiagnosisDataReport) (*pb.Response, error) {
	if in.GetDataType() == "" {
		return &pb.Response{
			Success: false,
			Reason:  "data type is empty",
		}, nil
	}

	timestamp := in.GetTimestamp()
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}
	s.manager.CollectDiagnosisData(&diagnosiscommon.DiagnosisData{
		DataType:  in.GetDataType(),
		Timestamp: timestamp,
		Content:   in.GetContent(),
	})
	return &pb.Response{Success: true}, nil
}
