package linediff

import (
	"strings"
	"testing"
)

func TestAdapter_ComputeDiff(t *testing.T) {
	tests := []struct {
		name     string
		baseName string
		headName string
		base     []byte
		head     []byte
		want     string // Empty if no diff expected
	}{
		{
			name:     "identical content returns empty diff",
			baseName: "comment (current)",
			headName: "comment (new)",
			base:     []byte("line1\nline2\nline3\n"),
			head:     []byte("line1\nline2\nline3\n"),
			want:     "",
		},
		{
			name:     "different content returns unified diff",
			baseName: "comment (current)",
			headName: "comment (new)",
			base:     []byte("line1\nline2\nline3\n"),
			head:     []byte("line1\nmodified\nline3\n"),
			want:     "--- comment (current)\n+++ comment (new)\n@@ -1,4 +1,4 @@\n line1\n-line2\n+modified\n line3",
		},
		{
			name:     "added lines",
			baseName: "comment (current)",
			headName: "comment (new)",
			base:     []byte("line1\nline2\n"),
			head:     []byte("line1\nline2\nline3\nline4\n"),
			want:     "--- comment (current)\n+++ comment (new)\n@@ -1,3 +1,5 @@\n line1\n line2\n+line3\n+line4",
		},
		{
			name:     "empty base shows all additions",
			baseName: "comment (current)",
			headName: "comment (new)",
			base:     []byte(""),
			head:     []byte("new content\n"),
			want:     "--- comment (current)\n+++ comment (new)\n@@ -1 +1,2 @@\n+new content",
		},
		{
			name:     "empty head shows all deletions",
			baseName: "comment (current)",
			headName: "comment (new)",
			base:     []byte("old content\n"),
			head:     []byte(""),
			want:     "--- comment (current)\n+++ comment (new)\n@@ -1,2 +1 @@\n-old content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := New()
			got := adapter.ComputeDiff(tt.baseName, tt.headName, tt.base, tt.head)

			if tt.want == "" && got != "" {
				t.Errorf("ComputeDiff() expected empty diff, got:\n%s", got)
				return
			}

			if tt.want != "" && got == "" {
				t.Errorf("ComputeDiff() expected diff, got empty")
				return
			}

			// Normalize line endings for comparison
			gotNorm := strings.ReplaceAll(got, "\r\n", "\n")
			wantNorm := strings.ReplaceAll(tt.want, "\r\n", "\n")

			if gotNorm != wantNorm {
				t.Errorf("ComputeDiff() diff mismatch:\n--- Got ---\n%s\n--- Want ---\n%s", gotNorm, wantNorm)
			}
		})
	}
}

func TestAdapter_ComputeDiff_ContextLines(t *testing.T) {
	adapter := New()

	base := []byte("line1\nline2\nline3\nline4\nline5\nline6\nline7\nline8\nline9\n")
	head := []byte("line1\nline2\nline3\nline4\nCHANGED\nline6\nline7\nline8\nline9\n")

	diff := adapter.ComputeDiff("comment (current)", "comment (new)", base, head)

	// Three context lines on either side of the change
	if !strings.Contains(diff, "line2") {
		t.Error("Expected context line 'line2' before change")
	}
	if !strings.Contains(diff, "line8") {
		t.Error("Expected context line 'line8' after change")
	}
	if !strings.Contains(diff, "-line5") {
		t.Error("Expected removed line '-line5'")
	}
	if !strings.Contains(diff, "+CHANGED") {
		t.Error("Expected added line '+CHANGED'")
	}
}
