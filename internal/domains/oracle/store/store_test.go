package store_test

import (
	"testing"
	"zentravel/internal/domains/oracle/model"
	"zentravel/internal/domains/oracle/store"
)

func seed() model.Message {
	return model.Message{Role: model.RoleOracle, Text: "greeting"}
}

func TestCreateSeedsTranscript(t *testing.T) {
	s := store.New()

	id := s.Create(seed())
	if id == "" {
		t.Fatal("expected a session id")
	}

	messages, ok := s.Get(id)
	if !ok {
		t.Fatal("expected session to exist")
	}

	if len(messages) != 1 || messages[0].Text != "greeting" {
		t.Errorf("unexpected transcript %+v", messages)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := store.New()

	first := s.Create(seed())
	second := s.Create(seed())

	if first == second {
		t.Fatal("expected distinct session ids")
	}

	s.Append(first, model.Message{Role: model.RoleUser, Text: "question"})

	messages, _ := s.Get(second)
	if len(messages) != 1 {
		t.Errorf("appending to one session leaked into another: %+v", messages)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := store.New()

	id := s.Create(seed())
	s.Append(id,
		model.Message{Role: model.RoleUser, Text: "question"},
		model.Message{Role: model.RoleOracle, Text: "answer"},
	)

	messages, _ := s.Get(id)

	want := []string{"greeting", "question", "answer"}
	for i, text := range want {
		if messages[i].Text != text {
			t.Errorf("message %d = %q, want %q", i, messages[i].Text, text)
		}
	}
}

func TestUnknownSession(t *testing.T) {
	s := store.New()

	if _, ok := s.Get("missing"); ok {
		t.Error("expected Get on unknown session to report absence")
	}

	if s.Append("missing", seed()) {
		t.Error("expected Append on unknown session to report absence")
	}
}

func TestGetReturnsACopy(t *testing.T) {
	s := store.New()

	id := s.Create(seed())

	messages, _ := s.Get(id)
	messages[0].Text = "mutated"

	fresh, _ := s.Get(id)
	if fresh[0].Text != "greeting" {
		t.Error("mutating a returned transcript changed the stored one")
	}
}
