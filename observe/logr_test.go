package observe

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
)

func newFuncrLogger(lines *[]string, verbosity int) Logger {
	return NewLogrLogger(funcr.New(func(prefix, args string) {
		*lines = append(*lines, args)
	}, funcr.Options{Verbosity: verbosity}))
}

func TestLogrLogger(t *testing.T) {
	var lines []string
	logger := newFuncrLogger(&lines, 0)
	ctx := context.Background()

	scoped := logger.WithComponent(ComponentMeta{Name: "primary", Kind: "redis"})
	scoped.Info(ctx, "resource ready", Field{Key: "attempt", Value: 1})
	scoped.Warn(ctx, "probe slow")
	scoped.Error(ctx, "resource failed", Field{Key: "token", Value: "s3cret"})

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], `"resource.name"="primary"`) {
		t.Errorf("info line missing component: %s", lines[0])
	}
	if !strings.Contains(lines[0], `"attempt"=1`) {
		t.Errorf("info line missing field: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"warn"=true`) {
		t.Errorf("warn line missing marker: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"token"="[REDACTED]"`) {
		t.Errorf("error line not redacted: %s", lines[2])
	}
	if strings.Contains(lines[2], "s3cret") {
		t.Errorf("error line leaked secret: %s", lines[2])
	}
}

func TestLogrLogger_DebugVerbosity(t *testing.T) {
	var quiet []string
	newFuncrLogger(&quiet, 0).Debug(context.Background(), "dropped")
	if len(quiet) != 0 {
		t.Errorf("debug logged at verbosity 0: %v", quiet)
	}

	var verbose []string
	newFuncrLogger(&verbose, 1).Debug(context.Background(), "kept")
	if len(verbose) != 1 {
		t.Errorf("debug not logged at verbosity 1: %v", verbose)
	}
}
