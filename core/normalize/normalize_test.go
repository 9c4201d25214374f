package normalize

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/canvasmith/canvasmith/core/extract"
	"github.com/canvasmith/canvasmith/core/schema"
)

func decode(t *testing.T, payload string) any {
	t.Helper()
	decoded, err := extract.Decode(payload)
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", payload, err)
	}
	return decoded
}

// reencode marshals a normalized spec back into a decoded tree so it can be
// normalized again.
func reencode(t *testing.T, spec any) any {
	t.Helper()
	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return decoded
}

func TestScorecard(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    schema.Scorecard
	}{
		{
			name:    "complete payload",
			payload: `{"score": 82, "summary": "Good", "wins": ["a"], "fixes": ["b"]}`,
			want: schema.Scorecard{
				Score:   82,
				Summary: "Good",
				Wins:    []string{"a"},
				Fixes:   []string{"b"},
			},
		},
		{
			name:    "score clamped high",
			payload: `{"score": 150}`,
			want: schema.Scorecard{
				Score: 100,
				Wins:  []string{},
				Fixes: []string{},
			},
		},
		{
			name:    "score clamped low",
			payload: `{"score": -5}`,
			want: schema.Scorecard{
				Score: 0,
				Wins:  []string{},
				Fixes: []string{},
			},
		},
		{
			name:    "non-string items dropped",
			payload: `{"score": 10, "wins": ["keep", 7, null, "also"]}`,
			want: schema.Scorecard{
				Score: 10,
				Wins:  []string{"keep", "also"},
				Fixes: []string{},
			},
		},
		{
			name:    "empty object",
			payload: `{}`,
			want: schema.Scorecard{
				Score: 0,
				Wins:  []string{},
				Fixes: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scorecard(decode(t, tt.payload))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scorecard() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeceptiveReport_Placeholder(t *testing.T) {
	for _, payload := range []string{`{}`, `{"patterns": []}`, `{"patterns": ["not an object"]}`} {
		got := DeceptiveReport(decode(t, payload))
		if len(got.Patterns) != 1 {
			t.Fatalf("DeceptiveReport(%q).Patterns = %v, want one placeholder", payload, got.Patterns)
		}
		if got.Patterns[0].Name != "No patterns identified" || got.Patterns[0].Severity != "low" {
			t.Errorf("placeholder = %+v", got.Patterns[0])
		}
	}
}

func TestDeceptiveReport_Defaults(t *testing.T) {
	got := DeceptiveReport(decode(t, `{"patterns": [{"name": "  ", "severity": "extreme"}]}`))
	if got.Patterns[0].Name != "Unnamed pattern" {
		t.Errorf("Name = %q, want %q", got.Patterns[0].Name, "Unnamed pattern")
	}
	if got.Patterns[0].Severity != "medium" {
		t.Errorf("Severity = %q, want %q", got.Patterns[0].Severity, "medium")
	}
}

func TestDesignSpec(t *testing.T) {
	t.Run("device defaults fill missing dimensions", func(t *testing.T) {
		got := DesignSpec(decode(t, `{"screens": [{"device": "desktop"}, {"device": "tablet"}, {}]}`))
		wantSizes := [][2]float64{{1920, 1080}, {768, 1024}, {375, 812}}
		for i, want := range wantSizes {
			if got.Screens[i].Width != want[0] || got.Screens[i].Height != want[1] {
				t.Errorf("Screens[%d] = %vx%v, want %vx%v",
					i, got.Screens[i].Width, got.Screens[i].Height, want[0], want[1])
			}
		}
		if got.Screens[2].Device != "mobile" {
			t.Errorf("Screens[2].Device = %q, want mobile", got.Screens[2].Device)
		}
	})

	t.Run("explicit dimensions win over device defaults", func(t *testing.T) {
		got := DesignSpec(decode(t, `{"screens": [{"device": "mobile", "width": 400, "height": 900}]}`))
		if got.Screens[0].Width != 400 || got.Screens[0].Height != 900 {
			t.Errorf("size = %vx%v, want 400x900", got.Screens[0].Width, got.Screens[0].Height)
		}
	})

	t.Run("empty spec gets a placeholder screen", func(t *testing.T) {
		got := DesignSpec(decode(t, `{}`))
		if len(got.Screens) != 1 {
			t.Fatalf("Screens = %v, want one placeholder", got.Screens)
		}
		if got.Screens[0].Name != "Screen 1" {
			t.Errorf("Name = %q, want %q", got.Screens[0].Name, "Screen 1")
		}
		if got.Title != "Untitled design" || got.Fidelity != "medium" {
			t.Errorf("Title = %q, Fidelity = %q", got.Title, got.Fidelity)
		}
	})

	t.Run("screen count capped with notice only when over the ceiling", func(t *testing.T) {
		for _, count := range []int{1, 5, 6, 9} {
			screens := make([]string, count)
			for i := range screens {
				screens[i] = fmt.Sprintf(`{"name": "S%d"}`, i)
			}
			payload := `{"screens": [` + strings.Join(screens, ",") + `]}`
			got := DesignSpec(decode(t, payload))

			wantLen := count
			if wantLen > schema.MaxScreens {
				wantLen = schema.MaxScreens
			}
			if len(got.Screens) != wantLen {
				t.Errorf("count %d: len(Screens) = %d, want %d", count, len(got.Screens), wantLen)
			}
			if count > schema.MaxScreens {
				want := fmt.Sprintf("Showing the first %d of %d screens entries.", schema.MaxScreens, count)
				if got.TruncationNotice != want {
					t.Errorf("count %d: TruncationNotice = %q, want %q", count, got.TruncationNotice, want)
				}
				if got.Screens[0].Name != "S0" {
					t.Errorf("count %d: truncation must keep the first entries, got %q", count, got.Screens[0].Name)
				}
			} else if got.TruncationNotice != "" {
				t.Errorf("count %d: TruncationNotice = %q, want empty", count, got.TruncationNotice)
			}
		}
	})

	t.Run("unknown block degrades to paragraph", func(t *testing.T) {
		got := DesignSpec(decode(t, `{"screens": [{"blocks": [{"type": "carousel", "label": "Slides"}]}]}`))
		block := got.Screens[0].Blocks[0]
		if block.Type != "paragraph" || block.Text != "Slides" {
			t.Errorf("block = %+v, want paragraph carrying the label", block)
		}
	})

	t.Run("heading level and button variant defaults", func(t *testing.T) {
		payload := `{"screens": [{"blocks": [
			{"type": "heading", "text": "Hi", "level": 12},
			{"type": "button", "label": "Go", "variant": "danger"}
		]}]}`
		got := DesignSpec(decode(t, payload))
		if got.Screens[0].Blocks[0].Level != 1 {
			t.Errorf("Level = %d, want 1", got.Screens[0].Blocks[0].Level)
		}
		if got.Screens[0].Blocks[1].Variant != "primary" {
			t.Errorf("Variant = %q, want primary", got.Screens[0].Blocks[1].Variant)
		}
	})
}

func TestDiscoverySpec(t *testing.T) {
	t.Run("risks capped at twelve with notice", func(t *testing.T) {
		risks := make([]string, 15)
		for i := range risks {
			risks[i] = fmt.Sprintf(`{"title": "Risk %d", "severity": "low"}`, i)
		}
		payload := `{"meta": {"userRequest": "req"}, "risks": [` + strings.Join(risks, ",") + `]}`
		got := DiscoverySpec(decode(t, payload))

		if len(got.Risks) != schema.MaxRisks {
			t.Fatalf("len(Risks) = %d, want %d", len(got.Risks), schema.MaxRisks)
		}
		if got.Risks[0].Title != "Risk 0" || got.Risks[11].Title != "Risk 11" {
			t.Errorf("truncation must keep the first entries in order: %q .. %q",
				got.Risks[0].Title, got.Risks[11].Title)
		}
		want := "Showing the first 12 of 15 risks entries."
		if got.TruncationNotice != want {
			t.Errorf("TruncationNotice = %q, want %q", got.TruncationNotice, want)
		}
	})

	t.Run("first truncation wins across arrays", func(t *testing.T) {
		risks := make([]string, 13)
		tasks := make([]string, 8)
		for i := range risks {
			risks[i] = `{"title": "r"}`
		}
		for i := range tasks {
			tasks[i] = `{"task": "t"}`
		}
		payload := `{"risks": [` + strings.Join(risks, ",") + `], "asyncTasks": [` + strings.Join(tasks, ",") + `]}`
		got := DiscoverySpec(decode(t, payload))

		if !strings.HasPrefix(got.TruncationNotice, "Showing the first 12 of 13 risks") {
			t.Errorf("TruncationNotice = %q, want the risks notice", got.TruncationNotice)
		}
		if len(got.AsyncTasks) != schema.MaxAsyncTasks {
			t.Errorf("len(AsyncTasks) = %d, want %d", len(got.AsyncTasks), schema.MaxAsyncTasks)
		}
	})

	t.Run("title derivation", func(t *testing.T) {
		long := strings.Repeat("investigate onboarding drop-off ", 4)
		tests := []struct {
			name    string
			meta    string
			want    string
			wantLen int
		}{
			{
				name: "explicit title kept",
				meta: `{"title": "My study", "userRequest": "whatever"}`,
				want: "My study",
			},
			{
				name: "short request used as-is",
				meta: `{"userRequest": "Fix checkout"}`,
				want: "Fix checkout",
			},
			{
				name:    "long request truncated with ellipsis",
				meta:    `{"userRequest": "` + long + `"}`,
				wantLen: schema.MaxDerivedTitleLen + 3,
			},
			{
				name: "empty meta falls back",
				meta: `{}`,
				want: "Discovery session",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := DiscoverySpec(decode(t, `{"meta": `+tt.meta+`}`))
				if tt.want != "" && got.Meta.Title != tt.want {
					t.Errorf("Title = %q, want %q", got.Meta.Title, tt.want)
				}
				if tt.wantLen > 0 {
					if len(got.Meta.Title) != tt.wantLen {
						t.Errorf("len(Title) = %d, want %d", len(got.Meta.Title), tt.wantLen)
					}
					if !strings.HasSuffix(got.Meta.Title, "...") {
						t.Errorf("Title = %q, want ellipsis suffix", got.Meta.Title)
					}
				}
			})
		}
	})

	t.Run("envelope is always set", func(t *testing.T) {
		got := DiscoverySpec(decode(t, `{}`))
		if got.Type != "discoverySpec" || got.Version != "v1" {
			t.Errorf("envelope = %s/%s, want discoverySpec/v1", got.Type, got.Version)
		}
	})
}

func TestContentTable(t *testing.T) {
	t.Run("ragged rows padded and trimmed", func(t *testing.T) {
		payload := `{"columns": ["A", "B"], "rows": [["x"], ["y", "z", "extra"]]}`
		got := ContentTable(decode(t, payload))
		want := [][]string{{"x", ""}, {"y", "z"}}
		if !reflect.DeepEqual(got.Rows, want) {
			t.Errorf("Rows = %v, want %v", got.Rows, want)
		}
	})

	t.Run("scalar cells stringified, composites emptied", func(t *testing.T) {
		payload := `{"columns": ["A", "B", "C"], "rows": [[42, true, {"nested": 1}]]}`
		got := ContentTable(decode(t, payload))
		want := []string{"42", "true", ""}
		if !reflect.DeepEqual(got.Rows[0], want) {
			t.Errorf("Rows[0] = %v, want %v", got.Rows[0], want)
		}
	})

	t.Run("missing columns get a placeholder", func(t *testing.T) {
		got := ContentTable(decode(t, `{}`))
		if !reflect.DeepEqual(got.Columns, []string{"Column 1"}) {
			t.Errorf("Columns = %v, want placeholder", got.Columns)
		}
		if got.Title != "Table" {
			t.Errorf("Title = %q, want Table", got.Title)
		}
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	manyRisks := make([]string, 14)
	for i := range manyRisks {
		manyRisks[i] = fmt.Sprintf(`{"title": "Risk %d"}`, i)
	}

	tests := []struct {
		name    string
		kind    schema.Kind
		payload string
	}{
		{
			name:    "scorecard",
			kind:    schema.KindScorecard,
			payload: `{"score": 120, "summary": "s", "wins": ["w", 7]}`,
		},
		{
			name:    "deceptive report",
			kind:    schema.KindDeceptiveReport,
			payload: `{"patterns": [{"name": "Nagging", "severity": "bogus"}]}`,
		},
		{
			name:    "design spec with truncation",
			kind:    schema.KindDesignSpecV1,
			payload: `{"screens": [{}, {}, {}, {}, {}, {}, {}]}`,
		},
		{
			name:    "discovery spec with truncation",
			kind:    schema.KindDiscoverySpecV1,
			payload: `{"meta": {"userRequest": "long request"}, "risks": [` + strings.Join(manyRisks, ",") + `]}`,
		},
		{
			name:    "content table",
			kind:    schema.KindContentTableV1,
			payload: `{"columns": ["A"], "rows": [["x", "extra"], [1]]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Normalize(decode(t, tt.payload), tt.kind)
			second := Normalize(reencode(t, first), tt.kind)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Normalize is not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
			}
		})
	}
}

func TestNormalize_TruncationNoticePreservedAcrossPasses(t *testing.T) {
	screens := make([]string, 8)
	for i := range screens {
		screens[i] = fmt.Sprintf(`{"name": "S%d"}`, i)
	}
	first := DesignSpec(decode(t, `{"screens": [`+strings.Join(screens, ",")+`]}`))
	if first.TruncationNotice == "" {
		t.Fatal("first pass produced no truncation notice")
	}

	second := DesignSpec(reencode(t, first))
	if second.TruncationNotice != first.TruncationNotice {
		t.Errorf("second pass notice = %q, want %q preserved", second.TruncationNotice, first.TruncationNotice)
	}
	if len(second.Screens) != schema.MaxScreens {
		t.Errorf("len(Screens) = %d, want %d", len(second.Screens), schema.MaxScreens)
	}
}
