package parser

import (
	"reflect"
	"testing"
)

func TestParseMarkdown_HeadingHierarchy(t *testing.T) {
	input := "# Diabetes Management\n" +
		"Overview text.\n" +
		"\n" +
		"## Pharmacologic Therapy\n" +
		"### Metformin\n" +
		"First-line agent.\n"

	sections := ParseMarkdown(input)

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	if sections[0].Body != "Overview text." {
		t.Errorf("section 0 body got %q", sections[0].Body)
	}

	// Pharmacologic Therapy has no body of its own but must not be dropped.
	if sections[1].Heading != "Pharmacologic Therapy" || sections[1].Body != "" {
		t.Errorf("section 1 got heading=%q body=%q, want empty-body section", sections[1].Heading, sections[1].Body)
	}

	wantPath := []string{"Diabetes Management", "Pharmacologic Therapy", "Metformin"}
	if !reflect.DeepEqual(sections[2].Path, wantPath) {
		t.Errorf("section 2 path got %v, want %v", sections[2].Path, wantPath)
	}
	if sections[2].Level != 3 {
		t.Errorf("section 2 level got %d, want 3", sections[2].Level)
	}
}

func TestParseMarkdown_SkippedLevelPadsPath(t *testing.T) {
	input := "# Top\nintro\n### Deep\ndetails\n"

	sections := ParseMarkdown(input)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}

	wantPath := []string{"Top", "", "Deep"}
	if !reflect.DeepEqual(sections[1].Path, wantPath) {
		t.Errorf("path got %v, want %v", sections[1].Path, wantPath)
	}
}

func TestParseMarkdown_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantSections int
		wantHeadings []string
	}{
		{
			name:         "Preamble_Before_First_Heading",
			input:        "intro without heading\n\n# First\nbody\n",
			wantSections: 2,
			wantHeadings: []string{"", "First"},
		},
		{
			name:         "Heading_Only_Document",
			input:        "## Lonely\n",
			wantSections: 1,
			wantHeadings: []string{"Lonely"},
		},
		{
			name:         "Empty_Input",
			input:        "",
			wantSections: 0,
		},
		{
			name:         "Blank_Lines_Only",
			input:        "\n\n\n",
			wantSections: 0,
		},
		{
			name:         "Sibling_Headings_Reset_Stack",
			input:        "# A\n## A1\nx\n## A2\ny\n",
			wantSections: 3,
			wantHeadings: []string{"A", "A1", "A2"},
		},
		{
			name:         "Seven_Hashes_Is_Not_A_Heading",
			input:        "####### not a heading\n",
			wantSections: 1,
			wantHeadings: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := ParseMarkdown(tt.input)
			if len(sections) != tt.wantSections {
				t.Fatalf("got %d sections, want %d", len(sections), tt.wantSections)
			}
			for i, want := range tt.wantHeadings {
				if sections[i].Heading != want {
					t.Errorf("section %d heading got %q, want %q", i, sections[i].Heading, want)
				}
			}
		})
	}
}

func TestParseMarkdown_SiblingPathDoesNotLeak(t *testing.T) {
	input := "# A\n## A1\nx\n# B\ny\n"
	sections := ParseMarkdown(input)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	wantPath := []string{"B"}
	if !reflect.DeepEqual(sections[2].Path, wantPath) {
		t.Errorf("path got %v, want %v", sections[2].Path, wantPath)
	}
}
