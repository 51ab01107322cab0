package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/mctext"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { mctext.SetLogger(nil) })

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.Execute()
	return out.String(), err
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"text":"a"}`, formatJSON},
		{`  "quoted"`, formatJSON},
		{"§cred", formatLegacy},
		{"plain words", formatLegacy},
		{"", formatLegacy},
	}
	for _, tt := range tests {
		if got := detectFormat(tt.in); got != tt.want {
			t.Errorf("detectFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "legacy to json",
			args: []string{"convert", "§cred"},
			want: `{"text":"","extra":[{"text":"red","color":"red"}]}` + "\n",
		},
		{
			name: "json to legacy",
			args: []string{"convert", "--to", "legacy", `{"text":"hi","color":"gold"}`},
			want: "§6hi\n",
		},
		{
			name: "legacy to plain",
			args: []string{"convert", "--to", "plain", "§aok§r!"},
			want: "ok!\n",
		},
		{
			name:  "stdin",
			stdin: "§lB\n",
			args:  []string{"convert", "--to", "legacy"},
			want:  "§lB\n",
		},
		{
			name: "plain input keeps markers",
			args: []string{"convert", "--from", "plain", "--to", "legacy", "a§cb"},
			want: "a§cb\n",
		},
		{
			name:    "malformed json",
			args:    []string{"convert", "--from", "json", "{bad"},
			wantErr: true,
		},
		{
			name:    "unknown output format",
			args:    []string{"convert", "--to", "yaml", "x"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintCommand(t *testing.T) {
	got, err := run(t, "", "print", "§cred")
	if err != nil {
		t.Fatal(err)
	}
	if got != "red\n" {
		t.Errorf("print without a terminal = %q, want plain text", got)
	}

	got, err = run(t, "", "print", "--color", "§cred")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "38;2;255;85;85") {
		t.Errorf("print --color = %q, want 24-bit red", got)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("fit to text", func(t *testing.T) {
		path := filepath.Join(dir, "fit.png")
		if _, err := run(t, "", "render", "-o", path, "--background", "black", "§6Gold"); err != nil {
			t.Fatal(err)
		}
		img := decodePNG(t, path)
		b := img.Bounds()
		if b.Dx() < 10 || b.Dy() < 10 {
			t.Errorf("bounds = %v, want room for the text", b)
		}
		if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
			t.Errorf("background alpha = %d, want opaque", a)
		}
	})

	t.Run("fixed size", func(t *testing.T) {
		path := filepath.Join(dir, "fixed.png")
		if _, err := run(t, "", "render", "-o", path, "--width", "50", "--height", "20", "hi"); err != nil {
			t.Fatal(err)
		}
		if b := decodePNG(t, path).Bounds(); b.Dx() != 50 || b.Dy() != 20 {
			t.Errorf("bounds = %v, want 50x20", b)
		}
	})

	t.Run("config with flag override", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "mctext.toml")
		writeFile(t, cfgPath, "[render]\nwidth = 64\nheight = 40\n")
		path := filepath.Join(dir, "config.png")
		if _, err := run(t, "", "render", "--config", cfgPath, "--height", "24", "-o", path, "x"); err != nil {
			t.Fatal(err)
		}
		if b := decodePNG(t, path).Bounds(); b.Dx() != 64 || b.Dy() != 24 {
			t.Errorf("bounds = %v, want 64x24", b)
		}
	})

	t.Run("invalid flag value", func(t *testing.T) {
		if _, err := run(t, "", "render", "-o", filepath.Join(dir, "x.png"), "--align", "justify", "x"); err == nil {
			t.Error("expected error for unknown alignment")
		}
	})
}

func TestMeasureCommand(t *testing.T) {
	got, err := run(t, "", "measure", "§lhello")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"width:", "height:", "chars:"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	if _, err := run(t, "", "measure", "--family", "wingdings", "x"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestColorsCommand(t *testing.T) {
	got, err := run(t, "", "colors")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"§c", "red", "#ff5555", "#3f1515", "light_purple"} {
		if !strings.Contains(got, want) {
			t.Errorf("colors output missing %q", want)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 17 {
		t.Errorf("colors printed %d lines, want header and 16 colors", lines)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
