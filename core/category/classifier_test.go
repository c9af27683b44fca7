package category

import "testing"

func intPtr(v int) *int {
	return &v
}

func TestClassify_JapaneseLabels(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"政治", Politics},
		{"経済", Business},
		{"社会", Society},
		{"国際", International},
		{"スポーツ", Sports},
		{"科学・文化", Culture},
		{"エンタメ", Entertainment},
		{"IT・科学", Science},
		{"国会", Politics},
	}

	classifier := NewClassifier(&mockLogger{})

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := classifier.Classify(tt.label, nil); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestClassify_EnglishAliasesCaseInsensitive(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"politics", Politics},
		{"Politics", Politics},
		{"BUSINESS", Business},
		{"economy", Business},
		{"World", International},
		{"tech", Science},
		{"Entertainment", Entertainment},
	}

	classifier := NewClassifier(&mockLogger{})

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := classifier.Classify(tt.label, nil); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestClassify_PreassignedWins(t *testing.T) {
	classifier := NewClassifier(&mockLogger{})

	// Label says sports, configuration says politics
	got := classifier.Classify("スポーツ", intPtr(Politics))

	if got != Politics {
		t.Errorf("Classify = %d, want preassigned %d", got, Politics)
	}
}

func TestClassify_InvalidPreassignedFallsThroughToLabel(t *testing.T) {
	classifier := NewClassifier(&mockLogger{})

	got := classifier.Classify("国際", intPtr(99))

	if got != International {
		t.Errorf("Classify = %d, want label match %d", got, International)
	}
}

func TestClassify_UnknownLabelReturnsDefault(t *testing.T) {
	logged := false
	logger := &mockLogger{
		debugFunc: func(msg string, fields map[string]interface{}) {
			logged = true
		},
	}
	classifier := NewClassifier(logger)

	got := classifier.Classify("謎のカテゴリ", nil)

	if got != DefaultCategoryID {
		t.Errorf("Classify = %d, want default %d", got, DefaultCategoryID)
	}
	if !logged {
		t.Error("unknown label should be logged at debug level")
	}
}

func TestClassify_EmptyLabelReturnsDefault(t *testing.T) {
	classifier := NewClassifier(&mockLogger{})

	if got := classifier.Classify("", nil); got != DefaultCategoryID {
		t.Errorf("Classify(\"\") = %d, want default %d", got, DefaultCategoryID)
	}
}

func TestIsValid(t *testing.T) {
	for id := Politics; id <= Science; id++ {
		if !IsValid(id) {
			t.Errorf("IsValid(%d) = false, want true", id)
		}
	}

	for _, id := range []int{0, -1, 9, 100} {
		if IsValid(id) {
			t.Errorf("IsValid(%d) = true, want false", id)
		}
	}
}
