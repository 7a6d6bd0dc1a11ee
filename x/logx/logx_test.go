//go:build !rp2040 && !rp2350

package logx

import "testing"

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"warn":    LevelWarn,
		"ERROR":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLevel_NamedAndAll(t *testing.T) {
	_ = New("logx-test-a")
	_ = New("logx-test-b")

	SetLevel("logx-test-a", LevelWarn)
	if got := GetLevel("logx-test-a"); got != LevelWarn {
		t.Fatalf("a level = %v, want warn", got)
	}
	if got := GetLevel("logx-test-b"); got != LevelInfo {
		t.Fatalf("b level = %v, want info", got)
	}

	SetLevel("", LevelDebug)
	t.Cleanup(func() { SetLevel("", LevelInfo) })
	if GetLevel("logx-test-a") != LevelDebug || GetLevel("logx-test-b") != LevelDebug {
		t.Fatal("SetLevel(\"\") did not reach existing loggers")
	}
	if GetLevel("logx-test-new") != LevelDebug {
		t.Fatal("new logger did not inherit the default level")
	}
}
