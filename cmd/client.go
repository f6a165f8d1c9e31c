// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftls"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/apiclient"
	"github.com/hyperledger/firefly-transaction-orchestrator/internal/tmconfig"
	"github.com/spf13/cobra"
)

var url string

var tlsEnabled bool
var caFile string
var certFile string
var keyFile string

func ClientCommand() *cobra.Command {
	return buildClientCommand(createClient)
}

func buildClientCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client <subcommand>",
		Short: "Make API requests to a transaction orchestrator instance",
	}
	defaultURL := fmt.Sprintf("http://%s:%s", tmconfig.APIConfig.GetString(httpserver.HTTPConfAddress), tmconfig.APIConfig.GetString(httpserver.HTTPConfPort))

	clientCmd.PersistentFlags().StringVarP(&url, "url", "", defaultURL, "The URL of the transaction orchestrator")

	clientCmd.PersistentFlags().BoolVarP(&tlsEnabled, "tls", "", false, "Enable TLS on client")
	clientCmd.PersistentFlags().StringVarP(&caFile, "cacert", "", "", "The tls CA cert file")
	clientCmd.PersistentFlags().StringVarP(&certFile, "cert", "", "", "The tls cert file")
	clientCmd.PersistentFlags().StringVarP(&keyFile, "key", "", "", "The tls key file")

	clientCmd.AddCommand(clientStatusCommand(clientFactory))
	clientCmd.AddCommand(clientSubmissionsCommand(clientFactory))
	clientCmd.AddCommand(clientSwapCommand(clientFactory))

	return clientCmd
}

func createClient() (apiclient.TXOClient, error) {
	cfg := config.RootSection("txo_client")
	apiclient.InitConfig(cfg)
	if url != "" {
		cfg.Set("url", url)
	}
	if tlsEnabled {
		tlsConf := cfg.SubSection("tls")
		tlsConf.Set(fftls.HTTPConfTLSEnabled, true)
		if caFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCAFile, caFile)
		}
		if certFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCertFile, certFile)
		}
		if keyFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSKeyFile, keyFile)
		}
	}
	return apiclient.NewTXOClient(context.Background(), cfg)
}

func printJSON(v interface{}) {
	json, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(json))
}

func init() {
	tmconfig.Reset()
}
