package classifier

import "testing"

func TestVADERClassify(t *testing.T) {
	model, err := NewVADER()
	if err != nil {
		t.Fatalf("NewVADER error: %v", err)
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"clearly positive", "i love this product it is excellent and wonderful", "1"},
		{"clearly negative", "i hate this it is terrible and awful", "2"},
		{"no sentiment words", "the package arrived on tuesday", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Classify([]string{tt.text})
			if len(got) != 1 {
				t.Fatalf("Classify returned %d labels, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got[0], tt.want)
			}
		})
	}
}

func TestVADERClassifyBatchLength(t *testing.T) {
	model, err := NewVADER()
	if err != nil {
		t.Fatalf("NewVADER error: %v", err)
	}

	texts := []string{"good", "bad", "table", ""}
	got := model.Classify(texts)
	if len(got) != len(texts) {
		t.Fatalf("Classify returned %d labels for %d texts", len(got), len(texts))
	}
	for i, label := range got {
		if label != "0" && label != "1" && label != "2" {
			t.Errorf("label[%d] = %q, want a recognized code", i, label)
		}
	}
}
