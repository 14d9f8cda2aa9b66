// Command ask sends one question with a local file of context blocks to a
// running ragline server and prints the cited answer.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "ragline server URL")
	contextFile := flag.String("context", "", "JSON file with an array of context blocks")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ask [-server URL] [-context blocks.json] \"question\"")
		os.Exit(2)
	}
	question := flag.Arg(0)

	var blocks []json.RawMessage
	if *contextFile != "" {
		data, err := os.ReadFile(*contextFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read context file: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &blocks); err != nil {
			fmt.Fprintf(os.Stderr, "parse context file: %v\n", err)
			os.Exit(1)
		}
	}

	body, _ := json.Marshal(map[string]interface{}{
		"question":       question,
		"context_blocks": blocks,
	})
	resp, err := http.Post(*server+"/api/answer", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var result struct {
		Answer   string `json:"answer"`
		Provider string `json:"provider"`
		Error    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "parse response: %v\n", err)
		os.Exit(1)
	}
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "server error: %s\n", result.Error)
		os.Exit(1)
	}

	fmt.Printf("[%s]\n%s\n", result.Provider, result.Answer)
}
