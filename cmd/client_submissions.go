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
	"os"

	"github.com/hyperledger/firefly-transaction-orchestrator/internal/apiclient"
	"github.com/hyperledger/firefly-transaction-orchestrator/pkg/apitypes"
	"github.com/spf13/cobra"
)

func clientSubmissionsCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	clientSubmissionsCmd := &cobra.Command{
		Use:   "submissions <subcommand>",
		Short: "Submit contract calls, and list or get the records of submissions",
	}
	clientSubmissionsCmd.AddCommand(clientSubmissionsListCommand(clientFactory))
	clientSubmissionsCmd.AddCommand(clientSubmissionsGetCommand(clientFactory))
	clientSubmissionsCmd.AddCommand(clientSubmissionsSubmitCommand(clientFactory))
	return clientSubmissionsCmd
}

func clientSubmissionsListCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	var after string
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submissions, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			subs, err := client.ListSubmissions(context.Background(), after, limit)
			if err != nil {
				return err
			}
			printJSON(subs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&after, "after", "a", "", "Only list submissions older than this submission ID")
	cmd.Flags().IntVarP(&limit, "limit", "l", 25, "The maximum number of submissions to list")
	return cmd
}

func clientSubmissionsGetCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get <submissionId>",
		Short: "Get the record of a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			sub, err := client.GetSubmission(context.Background(), args[0])
			if err != nil {
				return err
			}
			printJSON(sub)
			return nil
		},
	}
}

func clientSubmissionsSubmitCommand(clientFactory func() (apiclient.TXOClient, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <callsFile>",
		Short: "Submit the contract calls in a JSON file, with an optional capabilities object",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var req apitypes.SubmitCallsRequest
			if err := json.Unmarshal(b, &req); err != nil {
				return err
			}
			client, err := clientFactory()
			if err != nil {
				return err
			}
			sub, err := client.SubmitCalls(context.Background(), &req)
			if err != nil {
				return err
			}
			printJSON(sub)
			return nil
		},
	}
}
