// Package client provides test commands for the planner API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the planner API",
	Long:  `Client commands allow you to test the planner API by making real HTTP requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "Planner API base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(getDraftCmd)
	ClientCmd.AddCommand(trainCmd)
	ClientCmd.AddCommand(skillsCmd)
	ClientCmd.AddCommand(budgetCmd)
	ClientCmd.AddCommand(metricsCmd)

	// Catalog commands
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(getItemCmd)
	ClientCmd.AddCommand(getNanoCmd)
}

// apiError is the error body the server returns on failures
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// doRequest performs one round trip against the server and decodes the JSON
// response into out when out is non-nil.
func doRequest(method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := strings.TrimSuffix(serverAddr, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= 400 {
		var serverErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Message != "" {
			return fmt.Errorf("%s: %s", serverErr.Code, serverErr.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func getJSON(path string, out any) error {
	return doRequest(http.MethodGet, path, nil, out)
}

func postJSON(path string, body any, out any) error {
	return doRequest(http.MethodPost, path, body, out)
}

// draftView mirrors the server's draft payload. Only the fields the client
// prints are decoded.
type draftView struct {
	ID        string        `json:"id"`
	PlayerID  string        `json:"player_id"`
	Notes     string        `json:"notes"`
	Character characterView `json:"character"`
	Progress  progressView  `json:"progress"`
}

type characterView struct {
	Name       string           `json:"name"`
	Breed      string           `json:"breed"`
	Profession string           `json:"profession"`
	Level      int32            `json:"level"`
	Trained    map[string]int32 `json:"trained"`
}

type progressView struct {
	CompletionPercentage int32  `json:"completion_percentage"`
	CurrentStep          string `json:"current_step"`
}

type warningView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func printDraft(d *draftView) {
	fmt.Printf("Draft ID: %s\n", d.ID)
	fmt.Printf("Player ID: %s\n", d.PlayerID)
	if d.Character.Name != "" {
		fmt.Printf("Name: %s\n", d.Character.Name)
	}
	if d.Character.Breed != "" {
		fmt.Printf("Breed: %s\n", d.Character.Breed)
	}
	if d.Character.Profession != "" {
		fmt.Printf("Profession: %s\n", d.Character.Profession)
	}
	if d.Character.Level > 0 {
		fmt.Printf("Level: %d\n", d.Character.Level)
	}
	if len(d.Character.Trained) > 0 {
		fmt.Printf("Trained stats: %d\n", len(d.Character.Trained))
	}
	if d.Notes != "" {
		fmt.Printf("Notes: %s\n", d.Notes)
	}
	fmt.Printf("Progress: %d%% (current step: %s)\n",
		d.Progress.CompletionPercentage, d.Progress.CurrentStep)
}

func printWarnings(warnings []warningView) {
	for _, w := range warnings {
		fmt.Printf("⚠️  %s: %s\n", w.Code, w.Message)
	}
}
