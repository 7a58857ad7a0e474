package logfinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDefaultPaths(t *testing.T) {
	tests := []struct {
		name    string
		p       Platform
		want    Paths
		wantErr error
	}{
		{
			name: "windows x64",
			p:    Platform{GOOS: "windows", GOARCH: "amd64", Getenv: fakeEnv(map[string]string{"LOCALAPPDATA": "local"})},
			want: Paths{
				LogFile:   filepath.Join(`C:\`, "Program Files (x86)", "Hearthstone", "Hearthstone_Data", "output_log.txt"),
				LogConfig: filepath.Join("local", "Blizzard", "Hearthstone", "log.config"),
			},
		},
		{
			name: "windows x86",
			p:    Platform{GOOS: "windows", GOARCH: "386", Getenv: fakeEnv(map[string]string{"LOCALAPPDATA": "local"})},
			want: Paths{
				LogFile:   filepath.Join(`C:\`, "Program Files", "Hearthstone", "Hearthstone_Data", "output_log.txt"),
				LogConfig: filepath.Join("local", "Blizzard", "Hearthstone", "log.config"),
			},
		},
		{
			name: "darwin",
			p:    Platform{GOOS: "darwin", GOARCH: "arm64", Getenv: fakeEnv(map[string]string{"HOME": "/Users/me"})},
			want: Paths{
				LogFile:   filepath.Join("/Users/me", "Library", "Logs", "Unity", "Player.log"),
				LogConfig: filepath.Join("/Users/me", "Library", "Preferences", "Blizzard", "Hearthstone", "log.config"),
			},
		},
		{
			name:    "linux",
			p:       Platform{GOOS: "linux", GOARCH: "amd64", Getenv: fakeEnv(nil)},
			wantErr: ErrUnsupportedPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.DefaultPaths()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DefaultPaths() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DefaultPaths() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultPaths() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindLogFile_Explicit(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "Player.log")
	if err := os.WriteFile(logFile, nil, 0644); err != nil {
		t.Fatal(err)
	}

	p := Platform{GOOS: "linux", Getenv: fakeEnv(nil)}
	got, err := p.FindLogFile(logFile)
	if err != nil {
		t.Fatalf("FindLogFile() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(logFile)
	if got != want {
		t.Errorf("FindLogFile() = %q, want %q", got, want)
	}
}

func TestFindLogFile_ExplicitMissing(t *testing.T) {
	p := Platform{GOOS: "linux", Getenv: fakeEnv(nil)}
	_, err := p.FindLogFile("/nonexistent/Player.log")
	if !errors.Is(err, ErrLogFileNotFound) {
		t.Errorf("FindLogFile() error = %v, want %v", err, ErrLogFileNotFound)
	}
}

func TestFindLogFile_Directory(t *testing.T) {
	p := Platform{GOOS: "linux", Getenv: fakeEnv(nil)}
	_, err := p.FindLogFile(t.TempDir())
	if !errors.Is(err, ErrLogFileNotFound) {
		t.Errorf("FindLogFile() error = %v, want %v", err, ErrLogFileNotFound)
	}
}

func TestFindLogFile_Env(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "output_log.txt")
	if err := os.WriteFile(logFile, nil, 0644); err != nil {
		t.Fatal(err)
	}

	p := Platform{GOOS: "linux", Getenv: fakeEnv(map[string]string{EnvLogFile: logFile})}
	got, err := p.FindLogFile("")
	if err != nil {
		t.Fatalf("FindLogFile() error = %v", err)
	}
	if filepath.Base(got) != "output_log.txt" {
		t.Errorf("FindLogFile() = %q, want output_log.txt", got)
	}
}

func TestFindLogFile_DefaultDarwin(t *testing.T) {
	home := t.TempDir()
	logDir := filepath.Join(home, "Library", "Logs", "Unity")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(logDir, "Player.log"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	p := Platform{GOOS: "darwin", Getenv: fakeEnv(map[string]string{"HOME": home})}
	got, err := p.FindLogFile("")
	if err != nil {
		t.Fatalf("FindLogFile() error = %v", err)
	}
	if filepath.Base(got) != "Player.log" {
		t.Errorf("FindLogFile() = %q, want Player.log", got)
	}
}

func TestFindLogFile_UnsupportedPlatform(t *testing.T) {
	p := Platform{GOOS: "plan9", Getenv: fakeEnv(nil)}
	_, err := p.FindLogFile("")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("FindLogFile() error = %v, want %v", err, ErrUnsupportedPlatform)
	}
}

func TestFindLogConfig(t *testing.T) {
	p := Platform{GOOS: "darwin", Getenv: fakeEnv(map[string]string{"HOME": "/Users/me"})}

	got, err := p.FindLogConfig("/tmp/log.config")
	if err != nil || got != "/tmp/log.config" {
		t.Errorf("FindLogConfig(explicit) = %q, %v", got, err)
	}

	p.Getenv = fakeEnv(map[string]string{"HOME": "/Users/me", EnvLogConfig: "/env/log.config"})
	got, err = p.FindLogConfig("")
	if err != nil || got != "/env/log.config" {
		t.Errorf("FindLogConfig(env) = %q, %v", got, err)
	}

	p.Getenv = fakeEnv(map[string]string{"HOME": "/Users/me"})
	got, err = p.FindLogConfig("")
	want := filepath.Join("/Users/me", "Library", "Preferences", "Blizzard", "Hearthstone", "log.config")
	if err != nil || got != want {
		t.Errorf("FindLogConfig(default) = %q, %v, want %q", got, err, want)
	}
}
