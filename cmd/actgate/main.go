package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "actgate",
	Short: "actgate - a tool-augmented reverse-proxy LLM gateway",
	Long: `actgate sits between a chat client and an OpenAI-compatible completions
endpoint. It runs a bounded ReACT loop that lets the model call a fixed
whitelist of host tools before answering, then returns either a single
JSON document or a relayed SSE stream.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
