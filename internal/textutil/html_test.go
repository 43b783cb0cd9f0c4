package textutil

import "testing"

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty",
			input:  "   ",
			expect: "",
		},
		{
			name:   "plain text",
			input:  "Go  developer\n needed",
			expect: "Go developer needed",
		},
		{
			name:   "block elements do not glue words",
			input:  "<p>Strong <b>Go</b> skills</p><ul><li>Kafka</li><li>PostgreSQL</li></ul>",
			expect: "Strong Go skills Kafka PostgreSQL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := HTMLToText(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
