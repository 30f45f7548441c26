package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/internal/dto"
	"github.com/sharetribe/txprocess/pkg/domain"
)

var stateCmd = &cobra.Command{
	Use:   "state <transaction-file>",
	Short: "Resolve the state of a transaction fixture",
	Long: `Reads a transaction document (JSON or YAML) and prints its current
lifecycle state. With --role, the full UI-decision descriptor is printed as
JSON.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		roleFlag, _ := cmd.Flags().GetString("role")

		doc, err := loadTransactionDoc(args[0])
		if err != nil {
			fmt.Printf("Error loading transaction: %v\n", err)
			os.Exit(1)
		}

		engine, err := txprocess.New()
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		tx := doc.ToDomain()

		if roleFlag == "" {
			state, err := engine.State(tx)
			if err != nil {
				fmt.Printf("Error resolving state: %v\n", err)
				os.Exit(1)
			}
			if state == "" {
				fmt.Println("state cannot be determined")
				return
			}
			fmt.Println(state)
			return
		}

		role := domain.Role(roleFlag)
		if !role.Valid() {
			fmt.Printf("Unknown role %q (expected customer, provider, operator or system)\n", roleFlag)
			os.Exit(1)
		}

		data, err := engine.StateData(tx, role)
		if err != nil {
			fmt.Printf("Error resolving state data: %v\n", err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding descriptor: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().String("role", "", "Viewer role; prints the full decision descriptor")
}

func loadTransactionDoc(path string) (*dto.TransactionDoc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc dto.TransactionDoc
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON transaction: %w", err)
		}
		return &doc, nil
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML transaction: %w", err)
	}
	return &doc, nil
}
