package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"legal-office-management/internal/cli"
)

func newContext(t *testing.T, stdin string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	ctx, err := cli.NewContext("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	ctx.Stdin = strings.NewReader(stdin)
	ctx.Stdout = out
	ctx.Now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return ctx, out
}

func TestParseCmd(t *testing.T) {
	tests := []struct {
		name         string
		cmd          cli.ParseCmd
		stdin        string
		wantDias     float64
		wantUrgencia string
	}{
		{
			name:         "argument",
			cmd:          cli.ParseCmd{Text: "Data Inicial: 01/03/2024\nData Final: 15/03/2024"},
			wantDias:     5,
			wantUrgencia: "alta",
		},
		{
			name:         "stdin with simulated today",
			cmd:          cli.ParseCmd{Text: "-", Hoje: "14/03/2024"},
			stdin:        "Data Final: 15/03/2024\n",
			wantDias:     1,
			wantUrgencia: "critica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newContext(t, tt.stdin)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			var got struct {
				Intimacao map[string]any `json:"intimacao"`
			}
			if err := json.Unmarshal(out.Bytes(), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out.String())
			}
			if got.Intimacao["diasRestantes"] != tt.wantDias {
				t.Errorf("diasRestantes = %v, want %v", got.Intimacao["diasRestantes"], tt.wantDias)
			}
			if got.Intimacao["urgencia"] != tt.wantUrgencia {
				t.Errorf("urgencia = %v, want %v", got.Intimacao["urgencia"], tt.wantUrgencia)
			}
		})
	}
}

func TestParseCmdInvalidHoje(t *testing.T) {
	ctx, _ := newContext(t, "")
	cmd := cli.ParseCmd{Text: "Data Final: 15/03/2024", Hoje: "algum dia"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid --hoje")
	}
}

func TestCountCmd(t *testing.T) {
	list := `[
		{"id":"1","processo_oab_id":"p","descricao":"Data Final: 12/03/2024","lida":false},
		{"id":"2","processo_oab_id":"p","descricao":"Data Final: 15/03/2024","lida":false},
		{"id":"3","processo_oab_id":"p","descricao":"Data Final: 15/03/2024","lida":true},
		{"id":"4","processo_oab_id":"p","descricao":"Data Final: 30/04/2024","lida":false},
		{"id":"5","processo_oab_id":"p","descricao":null,"lida":false}
	]`
	path := filepath.Join(t.TempDir(), "andamentos.json")
	if err := os.WriteFile(path, []byte(list), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		file  string
		stdin string
	}{
		{name: "file", file: path},
		{name: "stdin", file: "-", stdin: list},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newContext(t, tt.stdin)
			cmd := cli.CountCmd{File: tt.file}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			var got struct {
				Total    int `json:"total"`
				Urgentes int `json:"urgentes"`
			}
			if err := json.Unmarshal(out.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got.Total != 5 || got.Urgentes != 2 {
				t.Errorf("got %+v, want total=5 urgentes=2", got)
			}
		})
	}
}

func TestCountCmdErrors(t *testing.T) {
	ctx, _ := newContext(t, "{not json")

	if err := (&cli.CountCmd{File: "-"}).Run(ctx); err == nil {
		t.Error("expected decode error")
	}
	if err := (&cli.CountCmd{File: filepath.Join(t.TempDir(), "missing.json")}).Run(ctx); err == nil {
		t.Error("expected read error")
	}
}
