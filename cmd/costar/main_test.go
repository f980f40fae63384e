package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"costar/internal/config"
	"costar/internal/testsupport"
	"costar/internal/tmdb"
)

type cliTestEnv struct {
	cfg        *config.Config
	fake       *testsupport.FakeTMDB
	configPath string
}

func newFakeTMDB() *testsupport.FakeTMDB {
	return &testsupport.FakeTMDB{
		Movies: map[int64]tmdb.MovieResult{
			103:  {ID: 103, Title: "Taxi Driver", ReleaseDate: "1976-02-07"},
			949:  {ID: 949, Title: "Heat", ReleaseDate: "1995-12-15"},
			8195: {ID: 8195, Title: "Ronin", ReleaseDate: "1998-09-25"},
		},
		Credits: map[int64][]tmdb.CastEntry{
			103: {
				{ID: 380, Name: "Robert De Niro", Character: "Travis Bickle"},
				{ID: 1037, Name: "Harvey Keitel", Character: "Sport"},
			},
			949: {
				{ID: 1158, Name: "Al Pacino", Character: "Lt. Vincent Hanna"},
				{ID: 380, Name: "Robert De Niro", Character: "Neil McCauley", ProfilePath: "/dn.jpg"},
				{ID: 1037, Name: "Harvey Keitel", Character: ""},
			},
			8195: {
				{ID: 380, Name: "Robert De Niro", Character: "Sam"},
				{ID: 1003, Name: "Jean Reno", Character: "Vincent"},
			},
		},
	}
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()
	t.Chdir(t.TempDir())

	fake := newFakeTMDB()
	server := testsupport.NewTMDBServer(t, fake)
	opts = append([]testsupport.ConfigOption{testsupport.WithTMDBBaseURL(server.URL)}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		fake:       fake,
		configPath: testsupport.WriteConfig(t, cfg),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath, input string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestRootShowsHelp(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	for _, name := range []string{"search", "overlap", "pick", "serve", "history", "config"} {
		requireContains(t, out, name)
	}
}

func TestServeCommandStopsOnCancel(t *testing.T) {
	env := setupCLITestEnv(t)

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", env.configPath, "serve", "--bind", "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("serve: %v", err)
	}
	requireContains(t, stdout.String(), "Serving costar API on http://127.0.0.1:")
}
