package models

import "testing"

func TestNewLessonGeneratesUniqueIds(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		lesson := NewLesson("Lesson", "video", "")
		if lesson.ID == "" {
			t.Fatal("NewLesson returned empty id")
		}
		if seen[lesson.ID] {
			t.Fatalf("duplicate lesson id %q", lesson.ID)
		}
		seen[lesson.ID] = true
	}
}

func TestNewLessonCarriesAttributes(t *testing.T) {
	lesson := NewLesson("Intro", "video", "m1")
	if lesson.Title != "Intro" || lesson.Type != "video" || lesson.MediaID != "m1" {
		t.Errorf("lesson = %+v, attributes not carried over", lesson)
	}
}
