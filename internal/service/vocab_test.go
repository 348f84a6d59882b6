package service

import (
	"fmt"
	"reflect"
	"testing"

	"review-backend/internal/models"
)

func TestTopWordsFilters(t *testing.T) {
	stop := map[string]struct{}{"это": {}, "the": {}}
	texts := []string{
		"the это товар хороший 12 ок",
		"товар пришел быстро",
	}

	got := TopWords(texts, stop, 0, 0)
	for _, entry := range got {
		if _, banned := stop[entry.Word]; banned {
			t.Errorf("stopword %q leaked into results", entry.Word)
		}
		if len([]rune(entry.Word)) <= 2 {
			t.Errorf("short token %q leaked into results", entry.Word)
		}
		if isDigits(entry.Word) {
			t.Errorf("numeric token %q leaked into results", entry.Word)
		}
	}

	if got[0].Word != "товар" || got[0].Count != 2 {
		t.Errorf("top entry = %+v, want товар x2", got[0])
	}
}

func TestTopWordsTieBreakFirstSeen(t *testing.T) {
	got := TopWords([]string{"bbb aaa ccc"}, nil, 0, 0)
	want := []models.WordCount{
		{Word: "bbb", Count: 1},
		{Word: "aaa", Count: 1},
		{Word: "ccc", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestTopWordsLimit(t *testing.T) {
	texts := []string{"one-a one-b one-c one-d one-e one-f one-g one-h one-i"}
	if got := TopWords(texts, nil, 0, 3); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestTopWordsSampleCap(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = fmt.Sprintf("word%d", i)
	}
	got := TopWords(texts, nil, 4, 20)
	if len(got) != 4 {
		t.Errorf("scanned beyond the sample cap: got %d distinct words, want 4", len(got))
	}
}

func TestTopWordsNoStopwordSetDisablesFilter(t *testing.T) {
	got := TopWords([]string{"the the the"}, nil, 0, 0)
	if len(got) != 1 || got[0].Word != "the" {
		t.Errorf("expected unfiltered scan to keep %q, got %v", "the", got)
	}
}

func TestTopWordsEmptyInput(t *testing.T) {
	got := TopWords(nil, nil, 0, 0)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
