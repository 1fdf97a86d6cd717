package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func main() {
	color.Cyan("🚀 Starting Verification API Smoke Test\n")

	// 1. Register a throwaway seeker account
	color.Yellow("\n[AUTH] 1. Register")
	registerReq := map[string]interface{}{
		"full_name":            "Smoke Tester",
		"email":                "smoke@example.com",
		"password":             "Sm0ke!Test",
		"role":                 "seeker",
		"cultural_affiliation": "zulu",
		"terms_agreed":         true,
		"ethics_agreed":        true,
	}
	resp, body, err := sendRequest("POST", "/auth/register", "", registerReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 2. Login
	color.Yellow("\n[AUTH] 2. Login")
	loginReq := map[string]interface{}{
		"email":    "smoke@example.com",
		"password": "Sm0ke!Test",
	}
	resp, body, err = sendRequest("POST", "/auth/login", "", loginReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	loginData := decode(body)
	prettyPrint(loginData)

	token := ""
	if data, ok := loginData["data"].(map[string]interface{}); ok {
		token, _ = data["token"].(string)
	}
	if token == "" {
		color.Red("No token in login response, aborting")
		os.Exit(1)
	}

	// 3. Look up a well-known barcode (Nutella)
	color.Yellow("\n[VERIFICATION] 3. Product Lookup")
	resp, body, err = sendRequest("GET", "/verification/product/3017620422003", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 4. Manual lookup with a bad barcode should be rejected
	color.Yellow("\n[VERIFICATION] 4. Manual Lookup (invalid barcode)")
	resp, body, _ = sendRequest("POST", "/verification/manual", token, map[string]interface{}{"barcode": "abc123"})
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 5. Search
	color.Yellow("\n[VERIFICATION] 5. Search")
	resp, body, _ = sendRequest("GET", "/verification/search?query=maize+meal", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 6. Recent verifications
	color.Yellow("\n[VERIFICATION] 6. Recent")
	resp, body, _ = sendRequest("GET", "/verification/recent", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 7. Dashboard
	color.Yellow("\n[USER] 7. Dashboard")
	resp, body, _ = sendRequest("GET", "/user/dashboard", token, nil)
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	color.Cyan("\n✅ Smoke test finished")
}
