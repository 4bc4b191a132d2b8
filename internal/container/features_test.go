package container

import (
	"strings"
	"testing"
)

func TestResolveFeaturesWith(t *testing.T) {
	args, err := ResolveFeatures([]string{"claude", "rust"}, nil)
	if err != nil {
		t.Fatalf("ResolveFeatures returned error: %v", err)
	}

	want := []string{
		"WITH_CLAUDE=1",
		"WITH_CODEX=0",
		"WITH_GEMINI=0",
		"WITH_OPENCODE=0",
		"WITH_COPILOT=0",
		"WITH_RUST=1",
	}
	assertStringsEqual(t, args, want)
}

func TestResolveFeaturesWithout(t *testing.T) {
	args, err := ResolveFeatures(nil, []string{"gemini"})
	if err != nil {
		t.Fatalf("ResolveFeatures returned error: %v", err)
	}

	want := []string{
		"WITH_CLAUDE=1",
		"WITH_CODEX=1",
		"WITH_GEMINI=0",
		"WITH_OPENCODE=1",
		"WITH_COPILOT=1",
		"WITH_RUST=1",
	}
	assertStringsEqual(t, args, want)
}

func TestResolveFeaturesNeither(t *testing.T) {
	args, err := ResolveFeatures(nil, nil)
	if err != nil {
		t.Fatalf("ResolveFeatures returned error: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("expected no feature args so image defaults apply, got %v", args)
	}
}

func TestResolveFeaturesUnknown(t *testing.T) {
	for _, tt := range []struct{ with, without []string }{
		{with: []string{"claude", "vim"}},
		{without: []string{"emacs"}},
	} {
		args, err := ResolveFeatures(tt.with, tt.without)
		if err == nil {
			t.Fatalf("ResolveFeatures(%v, %v) should fail", tt.with, tt.without)
		}
		// Must abort before emitting any build argument
		if args != nil {
			t.Errorf("expected nil args on unknown feature, got %v", args)
		}
		// The message must name the valid set
		if !strings.Contains(err.Error(), "claude") || !strings.Contains(err.Error(), "rust") {
			t.Errorf("error should list valid features, got %q", err)
		}
	}
}

func TestResolveFeaturesMutuallyExclusive(t *testing.T) {
	if _, err := ResolveFeatures([]string{"claude"}, []string{"rust"}); err == nil {
		t.Fatal("ResolveFeatures should reject combining --with and --without")
	}
}

func TestResolveFeaturesNormalizesNames(t *testing.T) {
	args, err := ResolveFeatures([]string{" Claude ", "RUST"}, nil)
	if err != nil {
		t.Fatalf("ResolveFeatures returned error: %v", err)
	}
	if args[0] != "WITH_CLAUDE=1" || args[5] != "WITH_RUST=1" {
		t.Errorf("feature names should be case/space insensitive, got %v", args)
	}
}

func assertStringsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}
