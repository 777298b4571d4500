package rowan

import (
	"fmt"
	"strings"
	"testing"
)

func TestConsoleLevels(t *testing.T) {
	c := NewConsole()
	c.SetOutput(nil)

	c.Infof("info %d", 1)
	c.Warnf("warn")
	c.Errorf("err")

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	want := []struct {
		level Level
		text  string
	}{
		{LevelInfo, "info 1"},
		{LevelWarn, "warn"},
		{LevelError, "err"},
	}
	for i, w := range want {
		if msgs[i].Level != w.level || msgs[i].Text != w.text {
			t.Errorf("message %d = %v %q, want %v %q", i, msgs[i].Level, msgs[i].Text, w.level, w.text)
		}
	}
}

func TestConsoleCollapsesRepeats(t *testing.T) {
	c := NewConsole()
	c.SetOutput(nil)

	for i := 0; i < 4; i++ {
		c.Warnf("texture missing")
	}
	c.Warnf("other")
	c.Warnf("texture missing") // not adjacent anymore, new entry

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3: %v", len(msgs), msgs)
	}
	if msgs[0].Repeat != 4 {
		t.Errorf("first entry repeat = %d, want 4", msgs[0].Repeat)
	}
	if got := msgs[0].String(); got != "(4x) texture missing" {
		t.Errorf("String() = %q", got)
	}
	if msgs[2].Repeat != 1 {
		t.Errorf("re-occurrence after a gap collapsed: repeat = %d", msgs[2].Repeat)
	}
}

func TestConsoleSameTextDifferentLevelNotCollapsed(t *testing.T) {
	c := NewConsole()
	c.SetOutput(nil)

	c.Infof("boom")
	c.Errorf("boom")

	if len(c.Messages()) != 2 {
		t.Errorf("messages across levels were collapsed")
	}
}

func TestConsoleCapsHistory(t *testing.T) {
	c := NewConsole()
	c.SetOutput(nil)

	for i := 0; i < maxConsoleMessages+50; i++ {
		c.Infof("msg %d", i)
	}
	msgs := c.Messages()
	if len(msgs) != maxConsoleMessages {
		t.Fatalf("history length = %d, want %d", len(msgs), maxConsoleMessages)
	}
	if msgs[0].Text != fmt.Sprintf("msg %d", 50) {
		t.Errorf("oldest retained = %q, want msg 50", msgs[0].Text)
	}
	last, _ := c.Last()
	if last.Text != fmt.Sprintf("msg %d", maxConsoleMessages+49) {
		t.Errorf("newest = %q", last.Text)
	}
}

func TestConsoleMirrorsToWriter(t *testing.T) {
	c := NewConsole()
	var sb strings.Builder
	c.SetOutput(&sb)

	c.Infof("hello")
	c.Warnf("careful")
	c.Errorf("broken")

	out := sb.String()
	for _, want := range []string{
		"[rowan] hello\n",
		"[rowan] warning: careful\n",
		"[rowan] error: broken\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("mirror output missing %q in %q", want, out)
		}
	}
}

func TestConsoleLastOnEmpty(t *testing.T) {
	c := NewConsole()
	if _, ok := c.Last(); ok {
		t.Error("Last on empty console reported a message")
	}
}
