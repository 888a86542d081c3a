// Command smoke probes a running instance with the three demo credential
// sets and verifies each lands on its own dashboard and nowhere else.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

type credentials struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	Data struct {
		SessionKey string `json:"session_key"`
	} `json:"data"`
}

var demoAccounts = []credentials{
	{Role: "admin", Username: "admin", Password: "admin123"},
	{Role: "teacher", Username: "tuan.da", Password: "teacher123"},
	{Role: "student", Username: "B24DCCC016", Password: "student123"},
}

var dashboards = map[string]string{
	"admin":   "/admin",
	"teacher": "/teacher",
	"student": "/student",
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server to probe")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	failures := 0

	for _, account := range demoAccounts {
		key, err := login(client, *baseURL, account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL login %s/%s: %v\n", account.Role, account.Username, err)
			failures++
			continue
		}

		for role, path := range dashboards {
			status, err := probe(client, *baseURL+path, key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s %s: %v\n", account.Role, path, err)
				failures++
				continue
			}
			want := http.StatusUnauthorized
			if role == account.Role {
				want = http.StatusOK
			}
			if status != want {
				fmt.Fprintf(os.Stderr, "FAIL %s %s: got %d want %d\n", account.Role, path, status, want)
				failures++
			} else {
				fmt.Printf("ok   %s %s -> %d\n", account.Role, path, status)
			}
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func login(client *http.Client, baseURL string, account credentials) (string, error) {
	payload, err := json.Marshal(account)
	if err != nil {
		return "", err
	}
	resp, err := client.Post(baseURL+"/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	var envelope loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", err
	}
	if envelope.Data.SessionKey == "" {
		return "", fmt.Errorf("empty session key")
	}
	return envelope.Data.SessionKey, nil
}

func probe(client *http.Client, url, key string) (int, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-Session-Key", key)
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
