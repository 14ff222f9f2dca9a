/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHeaderOverrideTransport(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Cache-Control", "no-store")
			w.Write([]byte("roster data"))
		}))
	defer server.Close()

	client := &http.Client{
		Transport: newHeaderTransport(http.DefaultTransport, 5*time.Minute),
	}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if len(data) == 0 {
		t.Errorf("Empty data")
	}
	if gotUA != UserAgent {
		t.Errorf("expected User-Agent %v, got %v", UserAgent, gotUA)
	}
	if resp.Header.Get("Pragma") != "" {
		t.Errorf("Pragma header not stripped")
	}
	if resp.Header.Get("Cache-Control") != "public, max-age=300" {
		t.Errorf("Cache-Control not rewritten: %v",
			resp.Header.Get("Cache-Control"))
	}
}

func TestHeaderOverridePreservesExplicitUA(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
	defer server.Close()

	client := &http.Client{
		Transport: newHeaderTransport(http.DefaultTransport, time.Minute),
	}
	req, err := http.NewRequest("GET", server.URL, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("User-Agent", "custom-agent/1.0")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotUA != "custom-agent/1.0" {
		t.Errorf("explicit User-Agent overridden: %v", gotUA)
	}
}
