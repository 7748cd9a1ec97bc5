package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algorithms := []string{"doubling", "iterative"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{
			shell: "bash",
			contains: []string{
				"_fibseq_completions",
				"complete -F _fibseq_completions fibseq",
				"--algo",
				"doubling iterative all",
			},
		},
		{
			shell: "zsh",
			contains: []string{
				"#compdef fibseq",
				"_arguments -s",
				"--completion",
			},
		},
		{
			shell: "fish",
			contains: []string{
				"complete -c fibseq -f",
				"-l algo",
				"doubling iterative all",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, algorithms); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("%s completion should contain %q, got:\n%s", tt.shell, s, output)
				}
			}
		})
	}

	t.Run("unsupported shell", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := GenerateCompletion(&buf, "powershell", algorithms); err == nil {
			t.Error("Expected error for unsupported shell")
		}
	})
}
