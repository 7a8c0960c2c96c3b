package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{name: "nil response", resp: nil, wantErr: true},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: true},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: `{"title":`}, {Text: `"x"}`}}}},
			}},
			want: `{"title":"x"}`,
		},
		{
			name: "skips thought parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "thinking...", Thought: true}, {Text: "제주의 바람"}}}},
			}},
			want: "제주의 바람",
		},
		{
			name: "first non-empty candidate",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "a"}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "b"}}}},
			}},
			want: "a",
		},
		{
			name: "blank text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "  \n"}}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.resp)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyResponse) {
					t.Fatalf("err = %v, want ErrEmptyResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "", "gemini-2.0-flash-lite"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
