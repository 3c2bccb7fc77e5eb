package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreatePageCmdRequiresArgs(t *testing.T) {
	cmd := newCreatePageCmd()
	cmd.SetArgs([]string{"only-database-id"})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error for missing title argument")
	}
}

func TestCreatePageCmdRequiresToken(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "")

	cmd := newCreatePageCmd()
	cmd.SetArgs([]string{"db-1", "Title"})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected error when NOTION_API_TOKEN is not set")
	}
}

func TestCreatePageCmdPrintsPageID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"page-xyz"}`))
	}))
	defer srv.Close()

	t.Setenv("NOTION_API_TOKEN", "secret")
	t.Setenv("NOTION_API_URL", srv.URL)

	out := bytes.NewBuffer(nil)
	cmd := newCreatePageCmd()
	cmd.SetArgs([]string{"db-1", "Weekly review"})
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "page-xyz" {
		t.Errorf("Expected page ID on stdout, got %q", got)
	}
}

func TestCreatePageCmdAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"database not found"}`))
	}))
	defer srv.Close()

	t.Setenv("NOTION_API_TOKEN", "secret")
	t.Setenv("NOTION_API_URL", srv.URL)

	cmd := newCreatePageCmd()
	cmd.SetArgs([]string{"db-missing", "Title"})
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for failed API call")
	}
	if !strings.Contains(err.Error(), "database not found") {
		t.Errorf("Expected upstream message preserved, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out := bytes.NewBuffer(nil)
	cmd := newVersionCmd()
	cmd.SetOut(out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "singularity-mcp version") {
		t.Errorf("Expected version output, got %q", out.String())
	}
}
