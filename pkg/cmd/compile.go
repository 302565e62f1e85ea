// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-arithc/arithc/pkg/process"
	"github.com/go-arithc/arithc/pkg/program"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] archive.json",
	Short: "synthesize an arithmetic circuit from a program archive.",
	Long:  "Interprets the named entry template or function from a JSON program archive and reports the resulting circuit.",
	Args:  cobra.ExactArgs(1),
	Run:   runCompileCmd,
}

func runCompileCmd(cmd *cobra.Command, args []string) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	entry := GetString(cmd, "entry")

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}

	archive, err := program.DecodeArchive(data)
	if err != nil {
		fmt.Println(err)
		os.Exit(4)
	}

	ip := process.New(archive)
	if err := ip.Run(entry, nil); err != nil {
		log.Error(err)
		os.Exit(5)
	}

	writeCircuitSummary(ip)
}

func writeCircuitSummary(ip *process.Interpreter) {
	fmt.Printf("signals:     %d\n", len(ip.Circuit.Signals()))
	fmt.Printf("gates:       %d\n", len(ip.Circuit.Gates()))
	fmt.Printf("connections: %d\n", len(ip.Circuit.Connections()))
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().String("entry", "Main", "entry template or function name")
}
