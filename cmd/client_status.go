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

	"github.com/hyperledger/firefly-transaction-orchestrator/internal/apiclient"
	"github.com/spf13/cobra"
)

func clientStatusCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	clientStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Get the current lifecycle status",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			status, err := client.GetStatus(context.Background())
			if err != nil {
				return err
			}
			printJSON(status)
			return nil
		},
	}
	clientStatusCmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "Get the recent lifecycle status transitions",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			history, err := client.GetStatusHistory(context.Background())
			if err != nil {
				return err
			}
			printJSON(history)
			return nil
		},
	})
	return clientStatusCmd
}
