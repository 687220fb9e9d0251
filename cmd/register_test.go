// ABOUTME: Tests for the signup commands
// ABOUTME: Verifies validation short-circuit and payload routing

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betherohq/hero-cli/internal/client"
)

func resetRegisterFlags() {
	apiURL = ""
	registerName = ""
	registerEmail = ""
	registerPassword = ""
	registerPhone = ""
	registerCity = ""
	registerUF = ""
}

func TestRegisterCommand_InvalidInputSkipsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	apiURL = server.URL
	registerPassword = "12345" // too short
	defer resetRegisterFlags()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if requests != 0 {
		t.Errorf("expected 0 requests for invalid input, got %d", requests)
	}
	if !bytes.Contains(buf.Bytes(), []byte("password")) {
		t.Error("expected password error in output")
	}
}

func TestRegisterCommand_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var input client.UserInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("failed to decode input: %v", err)
		}
		if input.Name != "Alex" {
			t.Errorf("expected name Alex, got %s", input.Name)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	apiURL = server.URL
	registerName = "Alex"
	registerEmail = "alex@example.com"
	registerPassword = "secret1"
	registerPhone = "5511912345678"
	defer resetRegisterFlags()

	var buf bytes.Buffer
	exitCode := runRegister(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotPath != "/users" {
		t.Errorf("expected path /users, got %s", gotPath)
	}
}

func TestRegisterONGCommand_RequiresLocation(t *testing.T) {
	apiURL = "http://127.0.0.1:1"
	registerName = "APAD"
	registerEmail = "contact@apad.org"
	registerPassword = "secret1"
	registerPhone = "5511912345678"
	// city and uf left empty
	defer resetRegisterFlags()

	var buf bytes.Buffer
	exitCode := runRegisterONG(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !bytes.Contains(buf.Bytes(), []byte("city")) {
		t.Error("expected city error in output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("uf")) {
		t.Error("expected uf error in output")
	}
}

func TestRegisterONGCommand_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var input client.ONGInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("failed to decode input: %v", err)
		}
		if input.UF != "SC" {
			t.Errorf("expected UF SC, got %s", input.UF)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	apiURL = server.URL
	registerName = "APAD"
	registerEmail = "contact@apad.org"
	registerPassword = "secret1"
	registerPhone = "5511912345678"
	registerCity = "Rio do Sul"
	registerUF = "SC"
	defer resetRegisterFlags()

	var buf bytes.Buffer
	exitCode := runRegisterONG(context.Background(), &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if gotPath != "/ongs" {
		t.Errorf("expected path /ongs, got %s", gotPath)
	}
}
