package refiner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSummarizer struct {
	calls   []string
	answers []string
	err     error
}

func (s *recordingSummarizer) Summarize(ctx context.Context, prompt, text string) (string, error) {
	s.calls = append(s.calls, prompt+"|"+text)
	if s.err != nil {
		return "", s.err
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func TestRefine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		answers   []string
		want      string
		wantCalls []string
	}{
		{
			name:      "one refinement then decline",
			input:     "y\nnew prompt\nn\n",
			answers:   []string{"refined"},
			want:      "refined",
			wantCalls: []string{"new prompt|original"},
		},
		{
			name:  "decline immediately",
			input: "n\n",
			want:  "original",
		},
		{
			name:      "chained refinements use the latest summary",
			input:     "y\nshorter\ny\nin french\nno\n",
			answers:   []string{"short", "court"},
			want:      "court",
			wantCalls: []string{"shorter|original", "in french|short"},
		},
		{
			name:  "only exact y continues",
			input: "yes\n",
			want:  "original",
		},
		{
			name:  "end of input declines",
			input: "",
			want:  "original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordingSummarizer{answers: tt.answers}
			var out strings.Builder

			got, err := New(strings.NewReader(tt.input), &out, s, logger.NewNop()).Refine(context.Background(), "original")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, s.calls)
		})
	}
}

func TestRefinePrintsEachResult(t *testing.T) {
	s := &recordingSummarizer{answers: []string{"refined"}}
	var out strings.Builder

	_, err := New(strings.NewReader("y\np\nn\n"), &out, s, logger.NewNop()).Refine(context.Background(), "original")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "Do you want to post process the summary? (y/n)"))
	assert.Contains(t, out.String(), "Enter a new prompt")
	assert.Contains(t, out.String(), "Summary: refined")
}

func TestRefineSummarizerError(t *testing.T) {
	s := &recordingSummarizer{err: errors.New("boom")}

	_, err := New(strings.NewReader("y\np\n"), &strings.Builder{}, s, logger.NewNop()).Refine(context.Background(), "original")
	assert.ErrorContains(t, err, "refine summary")
}
