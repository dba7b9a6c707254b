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

package main

import (
	"context"
	"flag"
	"net"

	log "github.com/golang/glog"
	"github.com/intelligent-machine-learning/easydl/master/pkg/common"
	"github.com/intelligent-machine-learning/easydl/master/pkg/config"
	pb "github.com/intelligent-machine-learning/easydl/master/pkg/proto"
	"github.com/intelligent-machine-learning/easydl/master/pkg/server"
	"google.golang.org/grpc"
)

func main() {
	log.Info("Start DLRover diagnosis master")
	flag.Parse()
	mConfig := config.CommandConfig

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start error handler
	log.Info("Start error handler")
	errHandler, err := common.NewStopAllErrorHandler(cancel)
	if err != nil {
		log.Fatalf("Create ErrorHandler error: %v", err)
	} else {
		go errHandler.HandleError(ctx)
	}

	conf := config.NewEmptyConfig()
	conf.Set(config.JobName, mConfig.JobName)
	conf.Set(config.JobUUID, mConfig.JobUUID)
	conf.Set(config.DBUser, mConfig.DBUser)
	conf.Set(config.DBPassword, mConfig.DBPassword)
	conf.Set(config.DBEngineType, mConfig.DBEngineType)
	conf.Set(config.DBURL, mConfig.DBURL)

	lis, err := net.Listen("tcp", mConfig.Port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	s := grpc.NewServer()

	diagnosisServer, err := server.NewDiagnosisServer(conf)
	if err != nil {
		log.Fatalf("fail to create the diagnosis server: %v", err)
	}

	err = diagnosisServer.Run(ctx, errHandler)
	if err != nil {
		log.Fatalf("Fail to run the diagnosis server: %v", err)
	}

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	pb.RegisterDiagnosisMasterServer(s, diagnosisServer)
	log.Infof("server listening at %v", lis.Addr())
	if err = s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
