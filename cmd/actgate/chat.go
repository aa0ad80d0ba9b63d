package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var (
	chatHostFlag  string
	chatModelFlag string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Exercise a running actgate gateway from an interactive prompt",
	Long: `Start an interactive session against a running actgate gateway.
This talks to the gateway's own /v1/chat/completions endpoint over HTTP,
the same way any other client would - it does not call an upstream model
or run tools itself.

Examples:
  actgate chat
  actgate chat --host http://localhost:9090 --model gpt-4o`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatHostFlag, "host", "http://localhost:8080", "Base URL of the running actgate gateway")
	chatCmd.Flags().StringVar(&chatModelFlag, "model", "gpt-4o", "Model to request")
	rootCmd.AddCommand(chatCmd)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func runChat(cmd *cobra.Command, args []string) error {
	fmt.Println("actgate - interactive gateway probe")
	fmt.Printf("Gateway: %s | Model: %s\n", chatHostFlag, chatModelFlag)
	fmt.Println("Type /reset to clear history, /quit to exit.")
	fmt.Println()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[36myou>\033[0m ",
		HistoryFile:     "/tmp/actgate_chat_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	httpClient := &http.Client{Timeout: 60 * time.Second}
	var history []chatMessage

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			switch strings.ToLower(strings.Fields(input)[0]) {
			case "/quit", "/exit", "/q":
				fmt.Println("Goodbye!")
				return nil
			case "/reset":
				history = nil
				fmt.Println("Conversation reset.")
				continue
			default:
				fmt.Printf("Unknown command: %s\n", input)
				continue
			}
		}

		history = append(history, chatMessage{Role: "user", Content: input})

		reply, err := postChatCompletion(httpClient, chatHostFlag, chatModelFlag, history)
		if err != nil {
			fmt.Printf("\033[31merror: %s\033[0m\n\n", err)
			history = history[:len(history)-1]
			continue
		}

		history = append(history, chatMessage{Role: "assistant", Content: reply})
		fmt.Printf("\n\033[32mgateway>\033[0m %s\n\n", reply)
	}
}

// postChatCompletion sends the full history to the gateway and returns the
// assistant's reply text. It prints a one-line summary of any tool calls
// the gateway's ReACT loop made along the way, read out of
// __react_messages, before returning the final content.
func postChatCompletion(client *http.Client, host, model string, history []chatMessage) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model":    model,
		"messages": history,
		"stream":   false,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	resp, err := client.Post(strings.TrimRight(host, "/")+"/v1/chat/completions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(raw))
	}

	root := gjson.ParseBytes(raw)
	printToolTrace(root.Get("__react_messages"))

	content := root.Get("choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("response had no choices[0].message.content: %s", string(raw))
	}
	return content.String(), nil
}

func printToolTrace(trace gjson.Result) {
	if !trace.IsArray() {
		return
	}
	for _, msg := range trace.Array() {
		switch msg.Get("role").String() {
		case "assistant":
			for _, tc := range msg.Get("tool_calls").Array() {
				name := tc.Get("function.name").String()
				fmt.Printf("  \033[33m⚡ tool call: %s(%s)\033[0m\n", name, tc.Get("function.arguments").String())
			}
		case "tool":
			preview := msg.Get("content").String()
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Printf("  \033[90m│ %s\033[0m\n", preview)
		}
	}
}
